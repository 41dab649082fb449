/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package cputime reads the process CPU-time clock.

Now queries CLOCK_PROCESS_CPUTIME_ID through the clock_gettime syscall and
reports the CPU time consumed by the calling process as a single int64
microseconds value. The read has no side effects, holds no resources and is
safe to repeat; consecutive readings never decrease.

On platforms without a process CPU-time clock Now returns ErrUnsupported.
*/
package cputime

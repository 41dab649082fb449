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
Package builtin implements shell-style builtin commands and the thin contract
a host needs to invoke them.

A Builtin is a named command with usage and doc strings and a Run function.
Builtins register themselves into a process-wide table; a host hands Dispatch
an argv-style vector and argv[0] selects the builtin to run.

Hosts never expose ambient state to a builtin. Everything a builtin may touch
during one invocation travels in an Env: where command output goes, where
diagnostics go, and a Binder for assigning values into the host's variable
namespace. This keeps the builtins host-agnostic and testable with a buffer
and a map.

The package registers one builtin, clock_gettime, which reports the CPU time
consumed by the current process in microseconds.
*/
package builtin

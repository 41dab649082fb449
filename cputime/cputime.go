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

package cputime

import "errors"

// ErrUnsupported is returned by Now on platforms that have no process
// CPU-time clock.
var ErrUnsupported = errors.New("process CPU-time clock is not supported")

// Micros converts a seconds + nanoseconds clock reading to microseconds.
// The nanosecond remainder is truncated toward zero.
func Micros(sec, nsec int64) int64 {
	return sec*1000000 + nsec/1000
}

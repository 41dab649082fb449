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

package builtin

import (
	"fmt"
	"io"
	"os"
)

// Status is the exit sentinel a builtin reports back to its host.
type Status int

const (
	// Success means the invocation completed.
	Success Status = iota
	// Failure means the invocation failed; a diagnostic was reported.
	Failure
)

// Binder assigns a value to a named variable in the host's variable namespace.
type Binder interface {
	Bind(name, value string) error
}

// BindFunc adapts a plain function to the Binder interface.
type BindFunc func(name, value string) error

// Bind calls f(name, value).
func (f BindFunc) Bind(name, value string) error {
	return f(name, value)
}

// Env carries the host capabilities available to one builtin invocation.
// Vars may be nil for hosts that don't support variable assignment.
type Env struct {
	Out  io.Writer // command output
	Err  io.Writer // diagnostic channel
	Vars Binder    // host variable table
}

// Errorf reports a single diagnostic line to the env's error channel.
func (e *Env) Errorf(format string, args ...any) {
	w := e.Err
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// Builtin describes one command a host can invoke by name.
type Builtin struct {
	Name  string
	Usage string
	Short string
	Long  string
	Run   func(env *Env, argv []string) Status
}

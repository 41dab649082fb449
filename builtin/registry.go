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
	"sort"
)

// process-wide builtin table, populated from init() funcs before any dispatch
var registry = map[string]*Builtin{}

// Register makes b invocable through Dispatch. Registering two builtins
// under the same name is a programming error.
func Register(b *Builtin) error {
	if b.Name == "" {
		return fmt.Errorf("builtin has no name")
	}
	if b.Run == nil {
		return fmt.Errorf("builtin %q has no run function", b.Name)
	}
	if _, dup := registry[b.Name]; dup {
		return fmt.Errorf("builtin %q already registered", b.Name)
	}
	registry[b.Name] = b
	return nil
}

// Lookup returns the builtin registered under name.
func Lookup(name string) (*Builtin, bool) {
	b, ok := registry[name]
	return b, ok
}

// Names returns the registered builtin names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the builtin named by argv[0], passing it the full argv.
func Dispatch(env *Env, argv []string) Status {
	if len(argv) == 0 {
		env.Errorf("timep: no command given")
		return Failure
	}
	b, ok := registry[argv[0]]
	if !ok {
		env.Errorf("timep: unknown command '%s'", argv[0])
		return Failure
	}
	return b.Run(env, argv)
}

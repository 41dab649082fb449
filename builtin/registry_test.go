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
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterRejectsBadBuiltins(t *testing.T) {
	require.Error(t, Register(&Builtin{Run: func(*Env, []string) Status { return Success }}))
	require.Error(t, Register(&Builtin{Name: "noop"}))
	// clock_gettime registers itself from init()
	require.Error(t, Register(&Builtin{
		Name: "clock_gettime",
		Run:  func(*Env, []string) Status { return Success },
	}))
}

func TestLookup(t *testing.T) {
	b, ok := Lookup("clock_gettime")
	require.True(t, ok)
	require.Equal(t, "clock_gettime [<VAR>]", b.Usage)

	_, ok = Lookup("no_such_builtin")
	require.False(t, ok)
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	require.Contains(t, names, "clock_gettime")
	require.True(t, sort.StringsAreSorted(names))
}

func TestDispatchUnknown(t *testing.T) {
	errOut := &bytes.Buffer{}
	env := &Env{Err: errOut}
	require.Equal(t, Failure, Dispatch(env, []string{"no_such_builtin"}))
	require.Contains(t, errOut.String(), "unknown command 'no_such_builtin'")
}

func TestDispatchEmptyArgv(t *testing.T) {
	errOut := &bytes.Buffer{}
	env := &Env{Err: errOut}
	require.Equal(t, Failure, Dispatch(env, nil))
	require.Contains(t, errOut.String(), "no command given")
}

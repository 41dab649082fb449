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
	"errors"
	"fmt"
	"strconv"

	"github.com/facebook/timep/cputime"
)

var clockGettime = &Builtin{
	Name:  "clock_gettime",
	Usage: "clock_gettime [<VAR>]",
	Short: "Return high-resolution CPU time used by the current process",
	Long: "Return high-resolution CPU time used by the current process, in microseconds.\n" +
		"If an argument is passed, use it as the name of a variable to assign the result.\n" +
		"Otherwise, print the result to stdout.",
	Run: runClockGettime,
}

func init() {
	if err := Register(clockGettime); err != nil {
		panic(err)
	}
}

func runClockGettime(env *Env, argv []string) Status {
	if len(argv) > 2 {
		env.Errorf("clock_gettime: too many arguments")
		return Failure
	}
	varname := ""
	// an empty operand falls through to printing, same as no operand
	if len(argv) == 2 {
		varname = argv[1]
	}
	micros, err := cputime.Now()
	if err != nil {
		if errors.Is(err, cputime.ErrUnsupported) {
			env.Errorf("clock_gettime is not supported on this system.")
		} else {
			env.Errorf("clock_gettime failed: %v", err)
		}
		return Failure
	}
	if varname != "" {
		if err := env.Vars.Bind(varname, strconv.FormatInt(micros, 10)); err != nil {
			env.Errorf("clock_gettime: %v", err)
			return Failure
		}
		return Success
	}
	fmt.Fprintf(env.Out, "%d\n", micros)
	return Success
}

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

package cmd

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/timep/builtin"
)

var clockGettimeCmd = &cobra.Command{
	Use:   "clock_gettime [<VAR>]",
	Short: "Print CPU time used by the current process, in microseconds",
	Long: `Print high-resolution CPU time used by the current process, in microseconds.

With <VAR>, emit an eval-able assignment instead of the bare value:

  eval "$(timep clock_gettime RESULT)"
  echo "$RESULT"`,
	Args: cobra.ArbitraryArgs,
	Run:  runClockGettimeCmd,
}

func init() {
	RootCmd.AddCommand(clockGettimeCmd)
}

// evalBinder renders variable assignments as shell-eval-able lines.
// A standalone process can't reach into the caller's variable table,
// so the caller evals our output instead.
type evalBinder struct {
	w io.Writer
}

func (b evalBinder) Bind(name, value string) error {
	_, err := fmt.Fprintf(b.w, "%s=%s\n", name, value)
	return err
}

func runClockGettimeCmd(_ *cobra.Command, args []string) {
	ConfigureVerbosity()
	env := &builtin.Env{
		Out:  os.Stdout,
		Err:  os.Stderr,
		Vars: evalBinder{w: os.Stdout},
	}
	argv := append([]string{"clock_gettime"}, args...)
	log.Debugf("dispatching %v", argv)
	if builtin.Dispatch(env, argv) != builtin.Success {
		os.Exit(1)
	}
}

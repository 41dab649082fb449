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
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/facebook/timep/builtin"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available builtins",
	Run:   runListCmd,
}

func init() {
	RootCmd.AddCommand(listCmd)
}

func runListCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetColWidth(60)
	table.SetHeader([]string{"builtin", "usage", "description"})
	for _, name := range builtin.Names() {
		b, _ := builtin.Lookup(name)
		table.Append([]string{b.Name, b.Usage, b.Short})
	}
	table.Render()
}

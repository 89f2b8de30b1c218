/*
Copyright © 2026 Aquaveo, LLC

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

	"github.com/spf13/cobra"

	"github.com/Aquaveo/xmstool-examples/tools"
)

// listCmd prints the registered tools and their argument tables.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available tools and their arguments",
	Run: func(cmd *cobra.Command, args []string) {
		for _, key := range tools.Keys() {
			t, err := tools.New(key)
			if err != nil {
				continue
			}
			fmt.Printf("%s\t%q\n", key, t.Name())
			for _, a := range t.InitialArguments() {
				optional := ""
				if a.Optional {
					optional = ", optional"
				}
				fmt.Printf("    %-18s %s %s%s\t%s\n",
					a.Name, a.Direction, a.Type, optional, a.Description)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

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
	"os"
	"sort"

	"github.com/ghodss/yaml"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Aquaveo/xmstool-examples/tool"
	"github.com/Aquaveo/xmstool-examples/tools"
)

// runCmd executes one tool with argument values from a YAML file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a tool against a host directory",
	Long: `Run a tool. Argument values are supplied as a YAML mapping from
argument name to value, for example:

    two_dm_file: mesh.2dm
    override_name: true
    mesh_name: My Mesh`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("tool")
		argsFile, _ := cmd.Flags().GetString("args")
		dir, _ := cmd.Flags().GetString("dir")
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}

		t, err := tools.New(name)
		if err != nil {
			return err
		}
		values := map[string]interface{}{}
		if argsFile != "" {
			data, err := os.ReadFile(argsFile)
			if err != nil {
				return err
			}
			if err = yaml.Unmarshal(data, &values); err != nil {
				return fmt.Errorf("unable to parse %s: %v", argsFile, err)
			}
		}

		runner := tool.NewRunner(t, tool.NewFileHost(dir))
		if err = runner.Apply(values); err != nil {
			return err
		}
		if err = runner.Execute(); err != nil {
			if verrs, ok := err.(tool.ValidationError); ok {
				keys := make([]string, 0, len(verrs))
				for k := range verrs {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					logrus.Errorf("%s: %s", k, verrs[k])
				}
			}
			return err
		}
		logrus.Infof("%s finished", t.Name())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("tool", "t", "", "tool to run (see 'xmstool list')")
	runCmd.Flags().StringP("args", "a", "", "YAML file with argument values")
	runCmd.Flags().StringP("dir", "d", ".", "host directory for datasets and grids")
	runCmd.Flags().Bool("profile", false, "write a CPU profile")
	runCmd.MarkFlagRequired("tool")
}

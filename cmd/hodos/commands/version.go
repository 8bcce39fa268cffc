// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is set at link time: -ldflags "-X github.com/katalvlaran/hodos/cmd/hodos/commands.version=v1.2.3".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "hodos %s\n", version)
		if IsVerbose() {
			fmt.Fprintf(out, "  go:     %s\n", runtime.Version())
			fmt.Fprintf(out, "  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/machineuid/machineuid/internal/version"
)

const applicationName = "machineuid"

var longVersion bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), versionString(longVersion))
	},
}

// versionString renders the build metadata. When the binary was installed
// with `go install` (ldflags not set), it falls back to module build info.
func versionString(long bool) string {
	if version.Version == "0.0.0" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if long {
				return fmt.Sprintf("%s version: %s, Git commit: %s, Go version: %s, Platform: %s/%s\n",
					applicationName, info.Main.Version, info.Main.Sum, info.GoVersion,
					version.GoVersionOS, version.GoVersionArch)
			}

			return fmt.Sprintf("%s version: %s\n", applicationName, info.Main.Version)
		}
	}

	if long {
		return fmt.Sprintf("%s version: %s, Build date: %s, Build user: %s, Git commit: %s, Git branch: %s, Go version: %s, Platform: %s/%s\n",
			applicationName, version.Version, version.BuildDate, version.BuildUser,
			version.GitCommit, version.GitBranch, version.GoVersion,
			version.GoVersionOS, version.GoVersionArch)
	}

	return fmt.Sprintf("%s version: %s\n", applicationName, version.Version)
}

func versionCmdInit() {
	versionCmd.Flags().BoolVar(&longVersion, "long", false, "Show detailed version information")
	rootCmd.AddCommand(versionCmd)
}

func init() {
	versionCmdInit()
}

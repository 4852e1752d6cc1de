package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownBuildVersion = "unknown"

// buildVersion returns the module version synver was built at, and the Go
// toolchain that built it.
func buildVersion() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return unknownBuildVersion, ""
	}

	return info.Main.Version, info.GoVersion
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the synver build version",
		Long: `Print the version synver itself was built at. This is unrelated to the
version computed for compared trees.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := buildVersion()
			if version == unknownBuildVersion {
				cmd.Println("synver version:", unknownBuildVersion)
				return
			}

			cmd.Println("synver version\t", version)
			cmd.Println("go version\t", goVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}

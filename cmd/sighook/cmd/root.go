package cmd

import (
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	debug    bool
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sighook",
	Short: "Signal-origin classification toolkit",
	Long: `sighook maintains the per-platform si_code tables that the origin
classifier in pkg/sighook compiles in.

The generate command extracts the constants from the build host's C
headers. The classify command runs the classifier over values given on
the command line, as a porting and debugging aid.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "debug output")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/hostfs/pkg/hostfs"
)

var (
	backendName string
	logLevel    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hostfs",
	Short: "Drive the runtime's OS filesystem adapter",
	Long: `hostfs exercises the filesystem adapter the runtime's standard library
uses in place of direct platform calls. Each subcommand invokes one primitive
on the selected backend variant and reports its result; the "unsupported"
variant stubs every primitive the way a platform without a native backend
would.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", hostfs.BackendOS,
		"backend variant (os, unsupported)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level (trace, debug, info, warn, error)")

	// Add version command
	rootCmd.AddCommand(versionCmd)

	// Add subcommands
	rootCmd.AddCommand(newMkdirCommand())
	rootCmd.AddCommand(newCwdCommand())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the version number of hostfs`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hostfs version %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// newBackend builds the backend selected by the persistent flags. Extra
// options are applied last so callers can override the flag-derived ones.
func newBackend(extra ...hostfs.Option) (hostfs.Backend, error) {
	level, err := hostfs.LogLevelFromString(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	opts := []hostfs.Option{
		hostfs.WithBackend(backendName),
		hostfs.WithLogger(hostfs.NewLogger(os.Stderr, level)),
	}
	opts = append(opts, extra...)
	return hostfs.New(opts...), nil
}

// Package cmd implements the ctcheckmm command-line tool: a standalone
// verifier for Metamath proof databases.
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled in when building with make, but not when installing
// via "go install".
var Version string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ctcheckmm",
	Short: "A standalone verifier for Metamath proof databases.",
	Long: `ctcheckmm checks that a Metamath (.mm) database is a well-formed,
internally consistent set of definitions whose proofs actually establish
what they claim to.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to happen
// once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress warnings and the final summary line")

	cobra.OnInitialize(func() {
		if GetFlag(rootCmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	})
}

// GetFlag extracts a named boolean flag, panicking if it was never
// registered: a programmer error, not a user one.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}

	return r
}

// GetUint extracts a named uint flag, panicking if it was never
// registered.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		panic(err)
	}

	return r
}

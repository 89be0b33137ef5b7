package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkeir/ctcheckmm/pkg/mm/diag"
	"github.com/pkeir/ctcheckmm/pkg/mm/token"
	"github.com/pkeir/ctcheckmm/pkg/mm/verify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// verifyCmd represents the "verify" command: check a single Metamath
// database file, following any "$[ $]" includes relative to its
// directory, and report every diagnostic raised.
var verifyCmd = &cobra.Command{
	Use:   "verify [flags] database.mm",
	Short: "Verify a Metamath proof database.",
	Long: `Verify tokenizes, parses, and proof-checks a Metamath database,
reporting every syntax, scope, and proof error it finds. It exits
non-zero if the database fails to verify cleanly.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		cfg := verify.DefaultConfig()
		cfg.StrictFinalCheck = !GetFlag(cmd, "lax-final-check")
		cfg.AllowIncludes = !GetFlag(cmd, "no-includes")

		resolver := token.OSResolver{BaseDir: dirOf(args[0])}
		result := verify.NewSession(cfg).Verify(filepath.Base(args[0]), nil, resolver)

		quiet := GetFlag(cmd, "quiet")

		for _, d := range result.Diagnostics {
			if d.Severity == diag.Error {
				log.Error(diag.Format(d))
			} else if !quiet {
				log.Warn(diag.Format(d))
			}
		}

		if !quiet {
			fmt.Printf("%s: %d theorem(s) verified, %d warning(s)\n", args[0], result.VerifiedOK, result.VerifiedWarn)
		}

		if !result.OK() {
			os.Exit(1)
		}
	},
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}

	return ""
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().Bool("lax-final-check", false,
		"accept a proof whose final expression mismatches its theorem, with a warning")
	verifyCmd.Flags().Bool("no-includes", false, "treat \"$[\" as a hard error instead of resolving it")
}

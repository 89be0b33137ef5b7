package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkeir/ctcheckmm/pkg/mm/token"
	"github.com/spf13/cobra"
)

// includeGraphCmd lists every file a database pulls in via "$[ $]",
// without running any proof checking. Useful for auditing a database's
// file layout before verifying it.
var includeGraphCmd = &cobra.Command{
	Use:   "include-graph database.mm",
	Short: "List every file a Metamath database includes, transitively.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		included := make(map[string]struct{})
		resolver := token.OSResolver{BaseDir: dirOf(args[0])}

		if _, err := token.Tokenize(filepath.Base(args[0]), nil, resolver, included); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		names := make([]string, 0, len(included))
		for name := range included {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(includeGraphCmd)
}

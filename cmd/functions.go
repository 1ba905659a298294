package cmd

import (
	"dictcrackr/hashfunc"
	"fmt"

	"github.com/spf13/cobra"
)

// functionsCmd represents the functions command
var functionsCmd = &cobra.Command{
	Use:     "functions",
	Aliases: []string{"fn", "algorithms"},
	Short:   "List the supported hash functions",
	Args:    cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, _ []string) {
		for _, name := range hashfunc.Names() {
			kind, _ := hashfunc.Resolve(name)
			fmt.Fprintf(cmd.OutOrStdout(), "- %-12v %3d hex characters\n", name, kind.HexLen())
		}
	},
}

var digestCmd = &cobra.Command{
	Use:   "digest <function> <text>",
	Short: "Print the digest of text, handy for building test credential files",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := hashfunc.Resolve(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), kind.Sum(args[1]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(functionsCmd)
	rootCmd.AddCommand(digestCmd)
}

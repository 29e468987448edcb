package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/phanxgames/bramble/internal/demo"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available demos",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, d := range demo.All() {
		fmt.Fprintf(w, "%s\t%s\n", d.Name, d.Description)
	}
	return w.Flush()
}

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/autoimport/internal/catalog"
)

// listCmd shows the supported component libraries.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported component libraries",
	Long: `List the component libraries autoimport can configure, with the
packages it installs and the resolver it registers for each.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	bold := color.New(color.Bold)

	_, _ = fmt.Fprintln(tw, bold.Sprint("ID")+"\t"+bold.Sprint("NAME")+"\t"+bold.Sprint("RESOLVER")+"\t"+bold.Sprint("PACKAGES"))
	for _, e := range catalog.All() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.DisplayName, e.ResolverName, strings.Join(e.Dependencies, " "))
	}
	return tw.Flush()
}

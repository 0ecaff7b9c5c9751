package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mispimport/internal/buildinfo"
	"mispimport/internal/threat"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported indicator types and their MISP mapping",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tKIND\tMISP\tFIELD")
			for _, r := range threat.Rules() {
				if r.Kind == threat.KindObject {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Type, r.Kind, r.Container, r.Relation)
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Type, r.Kind, r.Category, r.AttributeType)
			}
			return tw.Flush()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}

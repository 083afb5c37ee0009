package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFunctionsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the contract functions hw can marshal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, spec := range app.table.List() {
				args := make([]string, 0, len(spec.Args))
				for _, arg := range spec.Args {
					label := arg.Name + " " + string(arg.Kind)
					if arg.Optional {
						label += "?"
					}
					args = append(args, label)
				}

				note := ""
				if spec.CreatesAsset {
					note = fmt.Sprintf("payable >= %s", app.builder.Config().AssetCreationDeposit)
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", spec.Signature(), strings.Join(args, ", "), note)
			}
			return w.Flush()
		},
	}
}

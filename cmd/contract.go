package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newContractCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Manage named contracts and tokens",
	}

	cmd.AddCommand(
		newContractAddCmd(app),
		newContractListCmd(app),
	)

	return cmd
}

func newContractAddCmd(app *app) *cobra.Command {
	var name string
	var id string
	var kind string
	var memo string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a contract or token under a name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entityID, err := domain.ParseEntityID(id)
			if err != nil {
				return err
			}

			entry := domain.ContractEntry{
				Name: name,
				ID:   entityID,
				Kind: domain.ContractKind(kind),
				Memo: memo,
			}
			if err := app.contracts.Save(cmd.Context(), entry); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s %s as %q\n", entry.Kind, entry.ID, entry.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name used in place of the id")
	cmd.Flags().StringVar(&id, "id", "", "Entity id (shard.realm.num)")
	cmd.Flags().StringVar(&kind, "kind", string(domain.ContractKindContract), "Entry kind: contract or token")
	cmd.Flags().StringVar(&memo, "memo", "", "Free-form note")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newContractListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered contracts and tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := app.contracts.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, entry := range entries {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.Name, entry.Kind, entry.ID, entry.Memo)
			}
			return w.Flush()
		},
	}
}

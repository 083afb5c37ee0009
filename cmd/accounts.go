package cmd

import (
	"fmt"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountsCmd(app *app) *cobra.Command {
	var refresh bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List accounts paired with the wallet",
		Args:  cobra.NoArgs,
		RunE: app.closing(func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Session()
			if err != nil {
				return err
			}

			var accounts []domain.AccountID
			if refresh {
				accounts, err = session.Refresh(cmd.Context())
			} else {
				accounts, err = session.PairedAccounts(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("list paired accounts: %w", err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), accounts)
			}
			if len(accounts) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No paired accounts.")
				return nil
			}
			for _, account := range accounts {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), account)
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Ask the wallet again instead of using the handshake snapshot")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

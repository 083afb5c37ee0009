package cmd

import (
	"context"

	"github.com/bnema/hedera-wallet-cli/internal/application"
	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAssociateCmd(app *app) *cobra.Command {
	var accountID string
	var token string
	var strategy string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "associate",
		Short: "Associate a token with a paired account",
		Args:  cobra.NoArgs,
		RunE: app.closing(func(cmd *cobra.Command, _ []string) error {
			tokenID, err := app.resolveEntity(cmd.Context(), token, domain.ContractKindToken)
			if err != nil {
				return err
			}
			parsed, err := strategyFlag(strategy)
			if err != nil {
				return err
			}

			associate := application.AssociateTokenCommand{
				AccountID: domain.NormalizeAccountID(accountID),
				TokenID:   tokenID,
				Strategy:  parsed,
			}

			var res domain.ExecutionResult
			execErr := awaitWallet(cmd, asJSON, approvalRequest(app.effectiveStrategy(parsed)), func(ctx context.Context) error {
				var err error
				res, err = app.coordinator(false).AssociateToken(ctx, associate)
				return err
			})
			return app.reportExecution(cmd, res, execErr, asJSON)
		}),
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Paired account id (shard.realm.num)")
	cmd.Flags().StringVar(&token, "token", "", "Token id or registry name")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Submission strategy: auto, signer or wallet (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

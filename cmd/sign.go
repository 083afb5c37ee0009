package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/hedera-wallet-cli/internal/application"
	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

func newSignCmd(app *app) *cobra.Command {
	var accountID string
	var message string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with a paired account",
		Args:  cobra.NoArgs,
		RunE: app.closing(func(cmd *cobra.Command, _ []string) error {
			var signature []byte
			err := awaitWallet(cmd, false, signatureRequest(""), func(ctx context.Context) error {
				var err error
				signature, err = app.coordinator(false).SignMessage(ctx, application.SignMessageCommand{
					AccountID: domain.NormalizeAccountID(accountID),
					Message:   message,
				})
				return err
			})
			if err != nil {
				return app.reportExecution(cmd, domain.ExecutionResult{}, err, false)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(signature))
			return err
		}),
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Paired account id (shard.realm.num)")
	cmd.Flags().StringVar(&message, "message", "", "Message to sign")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

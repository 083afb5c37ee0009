package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	chainstore "github.com/bnema/hedera-wallet-cli/internal/adapters/secrets/chain"
	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newBridgeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Configure the wallet bridge connection",
	}

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the bridge pairing token",
	}
	tokenCmd.AddCommand(
		newBridgeTokenSetCmd(app),
		newBridgeTokenRemoveCmd(app),
		newBridgeTokenStatusCmd(app),
	)
	cmd.AddCommand(tokenCmd)

	return cmd
}

func newBridgeTokenSetCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the pairing token presented to the bridge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(value) == "" {
				return errors.New("pairing token is empty")
			}
			if err := app.secretStore.Put(cmd.Context(), bridgeTokenKey, value); err != nil {
				return fmt.Errorf("store bridge token: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "bridge token saved")
			app.noteShadowed(cmd, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Pairing token")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newBridgeTokenRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Delete the stored pairing token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.secretStore.Delete(cmd.Context(), bridgeTokenKey); err != nil {
				return fmt.Errorf("remove bridge token: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "bridge token removed")
			app.noteShadowed(cmd, out)
			return nil
		},
	}
}

func newBridgeTokenStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the pairing token comes from, without printing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, source, err := app.secretStore.Lookup(cmd.Context(), bridgeTokenKey)
			out := cmd.OutOrStdout()
			switch {
			case errors.Is(err, domain.ErrSecretNotFound):
				_, _ = fmt.Fprintln(out, "bridge token: not set")
				return nil
			case err != nil:
				return fmt.Errorf("read bridge token: %w", err)
			case source == chainstore.SourceEnv:
				name, _ := app.secretStore.Shadowed(cmd.Context(), bridgeTokenKey)
				_, _ = fmt.Fprintf(out, "bridge token: set from %s\n", name)
			default:
				_, _ = fmt.Fprintf(out, "bridge token: stored under %s\n", app.settings.SecretsDir)
			}
			return nil
		},
	}
}

func (a *app) noteShadowed(cmd *cobra.Command, out io.Writer) {
	if name, ok := a.secretStore.Shadowed(cmd.Context(), bridgeTokenKey); ok {
		_, _ = fmt.Fprintf(out, "note: %s is set and takes precedence over the stored token\n", name)
	}
}

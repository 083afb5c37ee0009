package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hw",
		Short:         "Hedera wallet CLI (hw): run contract calls through a paired wallet",
		Long:          "hw validates and marshals contract calls, then submits them through a paired wallet over the wallet bridge and reports the receipt.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp(os.Stderr)
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountsCmd(app),
		newFunctionsCmd(app),
		newCallCmd(app),
		newSignTxCmd(app),
		newAssociateCmd(app),
		newSignCmd(app),
		newContractCmd(app),
		newBridgeCmd(app),
	)

	return rootCmd
}

// closing runs run and then releases the wallet session and flushes
// metrics, whatever the outcome.
func (a *app) closing(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		shutdownErr := a.shutdown()
		if err != nil {
			if shutdownErr != nil {
				a.logger.Warn("shutdown after failed command", zap.Error(shutdownErr))
			}
			return err
		}
		return shutdownErr
	}
}

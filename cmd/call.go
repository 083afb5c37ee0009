package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/hedera-wallet-cli/internal/application"
	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

type callFlags struct {
	account  string
	contract string
	function string
	args     string
	argOrder []string
	gas      uint64
	payable  string
	dynamic  bool
	asJSON   bool
}

func (f *callFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.account, "account", "", "Paired account id (shard.realm.num)")
	cmd.Flags().StringVar(&f.contract, "contract", "", "Contract id or registry name")
	cmd.Flags().StringVar(&f.function, "function", "", "Contract function name")
	cmd.Flags().StringVar(&f.args, "args", "{}", "Arguments as a JSON object keyed by argument name")
	cmd.Flags().StringSliceVar(&f.argOrder, "arg-order", nil, "Argument order for dynamically marshalled functions")
	cmd.Flags().Uint64Var(&f.gas, "gas", 0, "Gas limit (default from config)")
	cmd.Flags().StringVar(&f.payable, "payable", "0", "Payable amount in hbar")
	cmd.Flags().BoolVar(&f.dynamic, "dynamic", false, "Marshal functions missing from the table by value type")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Render JSON output")

	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("contract")
	_ = cmd.MarkFlagRequired("function")
}

func (f *callFlags) command(ctx context.Context, app *app) (application.ContractCallCommand, error) {
	args, err := decodeArgs(f.args)
	if err != nil {
		return application.ContractCallCommand{}, err
	}
	payable, err := domain.ParseHbar(f.payable)
	if err != nil {
		return application.ContractCallCommand{}, fmt.Errorf("parse --payable: %w", err)
	}
	contractID, err := app.resolveEntity(ctx, f.contract, domain.ContractKindContract)
	if err != nil {
		return application.ContractCallCommand{}, err
	}

	return application.ContractCallCommand{
		AccountID:  domain.NormalizeAccountID(f.account),
		ContractID: contractID,
		Function:   domain.FunctionName(strings.TrimSpace(f.function)),
		Args:       args,
		ArgOrder:   f.argOrder,
		Gas:        f.gas,
		Payable:    payable,
	}, nil
}

// decodeArgs keeps numbers as json.Number so large integers survive intact.
func decodeArgs(raw string) (application.Args, error) {
	decoder := json.NewDecoder(bytes.NewBufferString(raw))
	decoder.UseNumber()

	args := application.Args{}
	if err := decoder.Decode(&args); err != nil {
		return nil, fmt.Errorf("decode --args: %w", err)
	}
	return args, nil
}

func newCallCmd(app *app) *cobra.Command {
	var flags callFlags
	var strategy string

	cmd := &cobra.Command{
		Use:   "call",
		Short: "Execute a contract function through the paired wallet",
		Args:  cobra.NoArgs,
		RunE: app.closing(func(cmd *cobra.Command, _ []string) error {
			call, err := flags.command(cmd.Context(), app)
			if err != nil {
				return err
			}
			call.Strategy, err = strategyFlag(strategy)
			if err != nil {
				return err
			}

			var res domain.ExecutionResult
			execErr := awaitWallet(cmd, flags.asJSON, approvalRequest(app.effectiveStrategy(call.Strategy)), func(ctx context.Context) error {
				var err error
				res, err = app.coordinator(flags.dynamic).ExecuteContractCall(ctx, call)
				return err
			})
			return app.reportExecution(cmd, res, execErr, flags.asJSON)
		}),
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&strategy, "strategy", "", "Submission strategy: auto, signer or wallet (default from config)")

	return cmd
}

type signedTransactionOutput struct {
	RequestID string
	Function  domain.FunctionName
	TargetID  domain.EntityID
	CallData  hexutil.Bytes
	Signature hexutil.Bytes
}

func newSignTxCmd(app *app) *cobra.Command {
	var flags callFlags

	cmd := &cobra.Command{
		Use:   "sign-tx",
		Short: "Sign a contract call with the paired wallet without submitting it",
		Args:  cobra.NoArgs,
		RunE: app.closing(func(cmd *cobra.Command, _ []string) error {
			call, err := flags.command(cmd.Context(), app)
			if err != nil {
				return err
			}

			var signed application.SignedTransaction
			err = awaitWallet(cmd, flags.asJSON, signatureRequest(application.StrategySigner), func(ctx context.Context) error {
				var err error
				signed, err = app.coordinator(flags.dynamic).SignTransaction(ctx, call)
				return err
			})
			if err != nil {
				return app.reportExecution(cmd, domain.ExecutionResult{}, err, flags.asJSON)
			}

			out := signedTransactionOutput{
				RequestID: signed.RequestID,
				Function:  signed.Request.Function,
				TargetID:  signed.Request.TargetID,
				CallData:  signed.Request.CallData,
				Signature: signed.Signature,
			}
			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "request: %s\nsignature: %s\n", out.RequestID, out.Signature)
			return nil
		}),
	}

	flags.register(cmd)

	return cmd
}

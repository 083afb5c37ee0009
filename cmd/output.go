package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	resultadapter "github.com/bnema/hedera-wallet-cli/internal/adapters/render/result"
	"github.com/bnema/hedera-wallet-cli/internal/application"
	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/spf13/cobra"
)

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// reportExecution prints res, or the status message for err, and returns err
// unchanged so the exit code reflects the failure.
func (a *app) reportExecution(cmd *cobra.Command, res domain.ExecutionResult, err error, asJSON bool) error {
	if asJSON {
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), res)
	}

	report := resultadapter.Report{Err: err}
	out := cmd.OutOrStdout()
	if err == nil {
		report.Result = &res
	} else {
		out = cmd.ErrOrStderr()
	}

	rendered, renderErr := a.resultRenderer(report, resultadapter.RenderOptions{Now: a.now()})
	if renderErr != nil {
		return errors.Join(err, fmt.Errorf("render result: %w", renderErr))
	}
	_, _ = fmt.Fprintln(out, rendered)
	return err
}

// awaitWallet runs fn behind the approval spinner unless output is JSON.
func awaitWallet(cmd *cobra.Command, asJSON bool, request walletRequest, fn func(context.Context) error) error {
	if asJSON {
		return fn(cmd.Context())
	}
	return runApprovalSpinner(cmd.Context(), cmd.ErrOrStderr(), request, fn)
}

// effectiveStrategy is the strategy a command runs with once the config
// default is applied.
func (a *app) effectiveStrategy(requested application.SubmissionStrategy) application.SubmissionStrategy {
	if requested == "" {
		return a.settings.Strategy
	}
	return requested
}

// resolveEntity accepts a raw entity id or the name of a registry entry.
func (a *app) resolveEntity(ctx context.Context, ref string, kind domain.ContractKind) (string, error) {
	trimmed := strings.TrimSpace(ref)
	if _, err := domain.ParseEntityID(trimmed); err == nil {
		return trimmed, nil
	}

	entry, err := a.contracts.GetByName(ctx, trimmed)
	if err != nil {
		if errors.Is(err, domain.ErrContractNotFound) {
			return "", fmt.Errorf("%w: %q is neither an entity id nor a registered %s", domain.ErrInvalidIdentifier, ref, kind)
		}
		return "", err
	}
	if entry.Kind != kind {
		return "", fmt.Errorf("%w: %q is registered as a %s, not a %s", domain.ErrInvalidIdentifier, ref, entry.Kind, kind)
	}
	return entry.ID.String(), nil
}

// strategyFlag leaves the strategy unset when the flag is empty so the
// configured default applies.
func strategyFlag(raw string) (application.SubmissionStrategy, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	return application.ParseSubmissionStrategy(raw)
}

package result

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
}

func renderView(report Report, opts RenderOptions, s styles) string {
	if report.Err != nil {
		return renderFailure(report.Err, s)
	}
	if report.Result == nil {
		return s.guidance.Render("Nothing to report.")
	}
	return renderResult(*report.Result, opts, s)
}

func renderFailure(err error, s styles) string {
	status := domain.Describe(err)
	lines := []string{s.forCategory(status.Category).Render(status.Summary)}
	if status.Guidance != "" {
		lines = append(lines, s.guidance.Render(status.Guidance))
	}

	var execErr *domain.ExecutionError
	if errors.As(err, &execErr) {
		lines = append(lines, s.section.Render(field(s, "stopped while", string(execErr.Stage))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderResult(res domain.ExecutionResult, opts RenderOptions, s styles) string {
	headline := s.success.Render(domain.Describe(nil).Summary)
	if res.ReceiptUnavailable {
		headline = s.warning.Render("Transaction submitted, receipt unavailable.")
	}

	details := []string{
		field(s, "operation", string(res.Operation)),
		field(s, "account", res.AccountID.String()),
	}
	if !res.TargetID.IsZero() {
		details = append(details, field(s, "target", res.TargetID.String()))
	}
	if res.Function != "" {
		details = append(details, field(s, "function", functionLabel(res)))
	}
	if res.Strategy != "" {
		details = append(details, field(s, "submitted via", res.Strategy))
	}
	if res.TransactionID != "" {
		details = append(details, field(s, "transaction", res.TransactionID))
	}
	if !res.SubmittedAt.IsZero() {
		details = append(details, field(s, "submitted", formatSubmitted(res.SubmittedAt, opts.Now)))
	}

	lines := []string{headline, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, details...))}
	if res.Receipt != nil {
		lines = append(lines, s.section.Render(renderReceipt(*res.Receipt, s)))
	} else if res.ReceiptUnavailable {
		lines = append(lines, s.guidance.Render("Check the transaction in your wallet or a network explorer to confirm it."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderReceipt(receipt domain.Receipt, s styles) string {
	status := receipt.Status
	if status == "" {
		status = domain.ReceiptStatusSuccess
	}

	lines := []string{field(s, "receipt", status)}
	if receipt.ContractID != "" {
		lines = append(lines, field(s, "contract", receipt.ContractID))
	}
	if receipt.TokenID != "" {
		lines = append(lines, field(s, "token", receipt.TokenID))
	}
	if len(receipt.SerialNumbers) > 0 {
		serials := make([]string, 0, len(receipt.SerialNumbers))
		for _, serial := range receipt.SerialNumbers {
			serials = append(serials, fmt.Sprintf("%d", serial))
		}
		lines = append(lines, field(s, "serials", strings.Join(serials, ", ")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func functionLabel(res domain.ExecutionResult) string {
	if res.Path == domain.PathDynamic {
		return string(res.Function) + " (dynamic)"
	}
	return string(res.Function)
}

func field(s styles, key string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(key+":"), " ", s.value.Render(value))
}

func formatSubmitted(at, now time.Time) string {
	if now.IsZero() || at.After(now) {
		return at.Format(time.RFC3339)
	}

	elapsed := now.Sub(at).Round(time.Second)
	if elapsed < time.Second {
		return "just now"
	}
	return fmt.Sprintf("%s ago (%s)", elapsed, at.Format("15:04:05"))
}

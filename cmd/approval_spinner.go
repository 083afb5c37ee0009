package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/hedera-wallet-cli/internal/application"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// walletRequest describes what the wallet is asked to do while hw waits.
type walletRequest struct {
	action   string
	strategy application.SubmissionStrategy
}

func approvalRequest(strategy application.SubmissionStrategy) walletRequest {
	return walletRequest{action: "approval", strategy: strategy}
}

func signatureRequest(strategy application.SubmissionStrategy) walletRequest {
	return walletRequest{action: "signature", strategy: strategy}
}

func (r walletRequest) waitingLine() string {
	line := "Waiting for wallet " + r.action
	switch r.strategy {
	case application.StrategySigner:
		line += " (via signer)"
	case application.StrategyWallet:
		line += " (via wallet)"
	case application.StrategyAuto:
		line += " (via signer, wallet as fallback)"
	}
	return line + "..."
}

var (
	declinedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	stoppedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

type approvalDoneMsg struct {
	err error
}

type approvalSpinnerModel struct {
	spinner spinner.Model
	request walletRequest
	wait    tea.Cmd
	now     func() time.Time
	started time.Time
	elapsed time.Duration
	err     error
	done    bool
}

func newApprovalSpinnerModel(request walletRequest, wait tea.Cmd, now func() time.Time) approvalSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return approvalSpinnerModel{
		spinner: s,
		request: request,
		wait:    wait,
		now:     now,
		started: now(),
	}
}

func (m approvalSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait)
}

func (m approvalSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.elapsed = m.now().Sub(m.started)
		return m, cmd
	case approvalDoneMsg:
		m.done = true
		m.err = msg.err
		m.elapsed = m.now().Sub(m.started)
		return m, tea.Quit
	default:
		return m, nil
	}
}

// View leaves a line behind only when the wallet declined or the wait was
// cut short; results and other failures are rendered by the caller.
func (m approvalSpinnerModel) View() string {
	waited := m.elapsed.Round(time.Second)
	if !m.done {
		if waited < time.Second {
			return fmt.Sprintf("%s %s", m.spinner.View(), m.request.waitingLine())
		}
		return fmt.Sprintf("%s %s %s", m.spinner.View(), m.request.waitingLine(), waited)
	}

	switch {
	case errors.Is(m.err, ports.ErrUserRejected):
		return declinedStyle.Render(fmt.Sprintf("✗ Declined in the wallet after %s.", waited)) + "\n"
	case errors.Is(m.err, context.Canceled), errors.Is(m.err, context.DeadlineExceeded):
		return stoppedStyle.Render(fmt.Sprintf("Stopped waiting for the wallet after %s.", waited)) + "\n"
	default:
		return ""
	}
}

// runApprovalSpinner shows the pending request on output until wait returns.
func runApprovalSpinner(ctx context.Context, output io.Writer, request walletRequest, wait func(context.Context) error) error {
	waitCmd := func() tea.Msg {
		return approvalDoneMsg{err: wait(ctx)}
	}

	p := tea.NewProgram(
		newApprovalSpinnerModel(request, waitCmd, time.Now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(approvalSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}

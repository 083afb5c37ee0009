package prometheus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserverCountsOutcomes(t *testing.T) {
	t.Parallel()

	observer := NewObserver()
	ctx := context.Background()

	observer.ObserveExecution(ctx, ports.ExecutionEvent{
		Operation: domain.OperationContractCall,
		Stage:     domain.StageCompleted,
		Strategy:  "signer",
		Duration:  2 * time.Second,
	})
	observer.ObserveExecution(ctx, ports.ExecutionEvent{
		Operation:          domain.OperationContractCall,
		Stage:              domain.StageCompleted,
		Strategy:           "wallet",
		ReceiptUnavailable: true,
	})
	observer.ObserveExecution(ctx, ports.ExecutionEvent{
		Operation: domain.OperationTokenAssociate,
		Stage:     domain.StageValidating,
		Err:       domain.ErrAccountNotPaired,
	})

	assert.InDelta(t, 1, testutil.ToFloat64(observer.executions.WithLabelValues("contract_call", OutcomeSuccess, "completed", "signer")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(observer.executions.WithLabelValues("contract_call", OutcomeDegraded, "completed", "wallet")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(observer.executions.WithLabelValues("token_associate", OutcomeFailure, "validating", "")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(observer.degraded.WithLabelValues("contract_call")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(observer.duration))
}

func TestObserverMetricNames(t *testing.T) {
	t.Parallel()

	observer := NewObserver()
	observer.ObserveExecution(context.Background(), ports.ExecutionEvent{
		Operation:          domain.OperationSignMessage,
		ReceiptUnavailable: true,
	})

	expected := `
# HELP hw_receipts_degraded_total Executions reported successful without a receipt.
# TYPE hw_receipts_degraded_total counter
hw_receipts_degraded_total{operation="sign_message"} 1
`
	require.NoError(t, testutil.GatherAndCompare(observer.Registry(), strings.NewReader(expected), "hw_receipts_degraded_total"))
	assert.InDelta(t, 1, testutil.ToFloat64(observer.executions.WithLabelValues("sign_message", OutcomeDegraded, "completed", "")), 0)
}

func TestObserverWriteTextfile(t *testing.T) {
	t.Parallel()

	observer := NewObserver()
	observer.ObserveExecution(context.Background(), ports.ExecutionEvent{
		Operation: domain.OperationContractCall,
		Stage:     domain.StageSubmitting,
		Strategy:  "wallet",
		Err:       errors.New("boom"),
	})

	path := filepath.Join(t.TempDir(), "hw.prom")
	require.NoError(t, observer.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `hw_executions_total{operation="contract_call",outcome="failure",stage="submitting",strategy="wallet"} 1`)

	assert.ErrorContains(t, observer.WriteTextfile(""), "path is empty")
}

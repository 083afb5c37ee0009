package ports

import (
	"context"
	"time"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
)

type ExecutionEvent struct {
	RequestID          string
	Operation          domain.Operation
	Stage              domain.Stage
	Strategy           string
	Err                error
	ReceiptUnavailable bool
	Duration           time.Duration
}

type ExecutionObserver interface {
	ObserveExecution(ctx context.Context, event ExecutionEvent)
}

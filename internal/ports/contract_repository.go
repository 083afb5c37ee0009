package ports

import (
	"context"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
)

type ContractRepository interface {
	GetByName(ctx context.Context, name string) (domain.ContractEntry, error)
	List(ctx context.Context) ([]domain.ContractEntry, error)
	Save(ctx context.Context, entry domain.ContractEntry) error
	Functions(ctx context.Context) ([]domain.FunctionCallSpec, error)
}

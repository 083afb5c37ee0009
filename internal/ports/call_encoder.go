package ports

import "github.com/bnema/hedera-wallet-cli/internal/domain"

// CallEncoder turns a parameter list into contract call data (selector + arguments).
type CallEncoder interface {
	EncodeCall(params domain.ParameterList) ([]byte, error)
}

package domain

import (
	"fmt"
	"strings"
)

type ContractKind string

const (
	ContractKindContract ContractKind = "contract"
	ContractKindToken    ContractKind = "token"
)

// ContractEntry names a deployed contract or token so callers need not
// remember raw entity ids.
type ContractEntry struct {
	Name string
	ID   EntityID
	Kind ContractKind
	Memo string
}

func (c ContractEntry) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if c.ID.IsZero() {
		return fmt.Errorf("%w: id is required", ErrInvalidIdentifier)
	}
	switch c.Kind {
	case ContractKindContract, ContractKindToken:
	default:
		return fmt.Errorf("unsupported contract kind %q", c.Kind)
	}

	return nil
}

package domain

import "strings"

type AccountID string

// NormalizeAccountID trims and lower-cases raw so that "0.0.42" and " 0.0.42 "
// or checksummed/unchecksummed EVM aliases compare equal.
func NormalizeAccountID(raw string) AccountID {
	return AccountID(strings.ToLower(strings.TrimSpace(raw)))
}

func (id AccountID) Normalize() AccountID {
	return NormalizeAccountID(string(id))
}

func (id AccountID) Equal(other AccountID) bool {
	return id.Normalize() == other.Normalize()
}

func (id AccountID) String() string {
	return string(id)
}

// ContainsAccount reports whether ids holds id under normalized comparison.
func ContainsAccount(ids []AccountID, id AccountID) bool {
	for _, candidate := range ids {
		if candidate.Equal(id) {
			return true
		}
	}
	return false
}

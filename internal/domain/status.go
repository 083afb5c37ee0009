package domain

import "errors"

// Category groups failures by the guidance a caller should show the user.
type Category string

const (
	CategoryNone        Category = ""
	CategoryPairing     Category = "pairing"
	CategoryRejected    Category = "rejected"
	CategoryInvalid     Category = "invalid"
	CategoryUnavailable Category = "unavailable"
	CategoryInternal    Category = "internal"
)

type StatusMessage struct {
	Category Category
	Summary  string
	Guidance string
}

func (m StatusMessage) String() string {
	if m.Guidance == "" {
		return m.Summary
	}
	return m.Summary + " " + m.Guidance
}

// Describe maps err onto a human-readable status line. The order of checks
// matters: an association failure caused by a wallet decline reads as a decline.
func Describe(err error) StatusMessage {
	switch {
	case err == nil:
		return StatusMessage{Summary: "Transaction submitted."}
	case errors.Is(err, ErrNotInitialized), errors.Is(err, ErrInitializationFailed):
		return StatusMessage{
			Category: CategoryPairing,
			Summary:  "The wallet connection is not ready.",
			Guidance: "Open your wallet and connect it to this application, then try again.",
		}
	case errors.Is(err, ErrAccountNotPaired):
		return StatusMessage{
			Category: CategoryPairing,
			Summary:  "This account is not paired with the application.",
			Guidance: "Pair the account in your wallet before sending transactions from it.",
		}
	case errors.Is(err, ErrTransportRejected):
		return StatusMessage{
			Category: CategoryRejected,
			Summary:  "The wallet rejected this transaction.",
			Guidance: "Check the request in your wallet; nothing was submitted to the network.",
		}
	case errors.Is(err, ErrTransactionFailed):
		return StatusMessage{
			Category: CategoryRejected,
			Summary:  "The network processed the transaction but it did not succeed.",
			Guidance: "Inspect the receipt status for the reason.",
		}
	case errors.Is(err, ErrSignerUnavailable):
		return StatusMessage{
			Category: CategoryUnavailable,
			Summary:  "The wallet could not provide a signer for this account.",
			Guidance: "Disconnect and reconnect your wallet, then try again.",
		}
	case errors.Is(err, ErrUnknownFunction),
		errors.Is(err, ErrMissingArgument),
		errors.Is(err, ErrTypeMismatch),
		errors.Is(err, ErrValueOutOfRange),
		errors.Is(err, ErrValueTooLarge),
		errors.Is(err, ErrInvalidIdentifier):
		return StatusMessage{
			Category: CategoryInvalid,
			Summary:  "This function or one of its arguments is invalid: " + rootMessage(err) + ".",
			Guidance: "Fix the request; nothing was sent to the wallet.",
		}
	case errors.Is(err, ErrAssociationFailed):
		return StatusMessage{
			Category: CategoryUnavailable,
			Summary:  "The token could not be associated with this account.",
			Guidance: "Make sure the wallet is reachable and the token id is correct.",
		}
	default:
		return StatusMessage{
			Category: CategoryInternal,
			Summary:  "Unexpected error: " + err.Error() + ".",
		}
	}
}

func rootMessage(err error) string {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return argErr.Error()
	}
	return err.Error()
}

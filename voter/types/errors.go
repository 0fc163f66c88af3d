package types

import (
	"errors"
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

// Codespace is the codespace all voting client errors are registered under
const Codespace = "fhevote"

// client errors
var (
	// Code 1 is a reserved code for internal errors and should not be used for anything else
	ErrInternal = errorsmod.Register(Codespace, 1, "internal error")

	ErrWalletUnavailable    = errorsmod.Register(Codespace, 2, "wallet unavailable")
	ErrUserRejected         = errorsmod.Register(Codespace, 3, "user rejected the request")
	ErrBinding              = errorsmod.Register(Codespace, 4, "contract binding failed")
	ErrRemoteCallFailed     = errorsmod.Register(Codespace, 5, "remote call failed")
	ErrPermissionDenied     = errorsmod.Register(Codespace, 6, "no decryption permission")
	ErrDuplicateVoteAttempt = errorsmod.Register(Codespace, 7, "vote submission already in flight")
	ErrSubmissionRejected   = errorsmod.Register(Codespace, 8, "vote submission rejected")
	ErrConfirmationFailed   = errorsmod.Register(Codespace, 9, "vote confirmation failed")
	ErrAlreadyVoted         = errorsmod.Register(Codespace, 10, "account has already voted")
	ErrNotReady             = errorsmod.Register(Codespace, 11, "session is not ready")
	ErrSuperseded           = errorsmod.Register(Codespace, 12, "superseded by a newer request")
)

var kinds = map[*errorsmod.Error]string{
	ErrInternal:             "Internal",
	ErrWalletUnavailable:    "WalletUnavailable",
	ErrUserRejected:         "UserRejected",
	ErrBinding:              "BindingError",
	ErrRemoteCallFailed:     "RemoteCallFailed",
	ErrPermissionDenied:     "PermissionDenied",
	ErrDuplicateVoteAttempt: "DuplicateVoteAttempt",
	ErrSubmissionRejected:   "SubmissionRejected",
	ErrConfirmationFailed:   "ConfirmationFailed",
	ErrAlreadyVoted:         "AlreadyVoted",
	ErrNotReady:             "NotReady",
	ErrSuperseded:           "Superseded",
}

// kindError classifies an error it wraps as one of the registered kinds
type kindError struct {
	error
	kind *errorsmod.Error
}

// WithKind wraps err with description and classifies the result as kind.
// Unlike wrapping kind itself, err stays in the chain, so errors.Is, errors.As and attached log context still reach it.
func WithKind(kind *errorsmod.Error, err error, description string) error {
	if err == nil {
		return nil
	}

	return kindError{error: errorsmod.Wrap(err, description), kind: kind}
}

// WithKindf is WithKind with a formatted description
func WithKindf(kind *errorsmod.Error, err error, format string, args ...interface{}) error {
	return WithKind(kind, err, fmt.Sprintf(format, args...))
}

func (e kindError) Error() string {
	return fmt.Sprintf("%s: %s", e.error.Error(), e.kind.Error())
}

func (e kindError) Is(target error) bool {
	return e.kind.Is(target)
}

func (e kindError) Unwrap() error {
	return e.error
}

// Kind returns the taxonomy name of the outermost registered error or classification in err's chain,
// or "Internal" if there is none
func Kind(err error) string {
	if err == nil {
		return ""
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		var registered *errorsmod.Error
		switch e := e.(type) {
		case kindError:
			registered = e.kind
		case *errorsmod.Error:
			registered = e
		default:
			continue
		}

		if name, ok := kinds[registered]; ok {
			return name
		}
	}

	return kinds[ErrInternal]
}

// IsExpected returns true if the error is part of normal operation and should not be reported as a failure
func IsExpected(err error) bool {
	return errorsmod.IsOf(err, ErrPermissionDenied, ErrSuperseded)
}

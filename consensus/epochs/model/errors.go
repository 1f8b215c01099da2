package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shuoer86/rollups-node/model/rollups"
)

var (
	// ErrEmptyClaim is returned when a validator submits the empty claim hash.
	ErrEmptyClaim = errors.New("claim hash is empty")

	// ErrNoClaimToFinalize is returned when finalization is attempted while
	// the validator registry holds no pending claim.
	ErrNoClaimToFinalize = errors.New("no pending claim to finalize")
)

// UnauthorizedError indicates that the caller is not the party designated
// for a restricted operation.
type UnauthorizedError struct {
	Role   string
	Caller rollups.Identifier
}

func NewUnauthorizedErrorf(caller rollups.Identifier, role string, args ...interface{}) error {
	return UnauthorizedError{Role: fmt.Sprintf(role, args...), Caller: caller}
}

func (e UnauthorizedError) Error() string {
	return fmt.Sprintf("caller %x is not the %s", e.Caller, e.Role)
}

// IsUnauthorizedError returns whether an error is UnauthorizedError
func IsUnauthorizedError(err error) bool {
	var e UnauthorizedError
	return errors.As(err, &e)
}

// WrongPhaseError indicates that an operation was invoked outside its
// required phase.
type WrongPhaseError struct {
	Required Phase
	Actual   Phase
}

func (e WrongPhaseError) Error() string {
	return fmt.Sprintf("operation requires phase %s, current phase is %s", e.Required, e.Actual)
}

// IsWrongPhaseError returns whether an error is WrongPhaseError
func IsWrongPhaseError(err error) bool {
	var e WrongPhaseError
	return errors.As(err, &e)
}

// ChallengePeriodActiveError indicates that finalization was attempted
// before the challenge window elapsed.
type ChallengePeriodActiveError struct {
	SealedAt        time.Time
	ChallengePeriod time.Duration
}

func (e ChallengePeriodActiveError) Error() string {
	return fmt.Sprintf("challenge period active until after %s", e.SealedAt.Add(e.ChallengePeriod))
}

// IsChallengePeriodActiveError returns whether an error is ChallengePeriodActiveError
func IsChallengePeriodActiveError(err error) bool {
	var e ChallengePeriodActiveError
	return errors.As(err, &e)
}

// DuplicateClaimError indicates that a validator submitted a second claim
// for the same epoch.
type DuplicateClaimError struct {
	Validator rollups.Identifier
	Claim     rollups.Claim
}

func (e DuplicateClaimError) Error() string {
	return fmt.Sprintf("validator %x already claimed %x for this epoch", e.Validator, e.Claim)
}

// IsDuplicateClaimError returns whether an error is DuplicateClaimError
func IsDuplicateClaimError(err error) bool {
	var e DuplicateClaimError
	return errors.As(err, &e)
}

// ConfigurationError indicates that a constructor was initialized with
// invalid or inconsistent parameters.
type ConfigurationError struct {
	err error
}

func NewConfigurationErrorf(msg string, args ...interface{}) error {
	return ConfigurationError{fmt.Errorf(msg, args...)}
}

func (e ConfigurationError) Error() string { return e.err.Error() }
func (e ConfigurationError) Unwrap() error { return e.err }

// IsConfigurationError returns whether err is a ConfigurationError
func IsConfigurationError(err error) bool {
	var e ConfigurationError
	return errors.As(err, &e)
}

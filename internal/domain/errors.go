package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors wrap one of them so callers can use errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
	ErrStore      = errors.New("store failure")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// ErrCascadeIncomplete marks a committed operation whose referral bonuses were not
	// all paid.
	ErrCascadeIncomplete = errors.New("referral bonuses were not fully paid")
)

var (
	ErrMemberNotFound      = fmt.Errorf("%w: member", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("%w: transaction", ErrNotFound)

	ErrUsernameTaken       = fmt.Errorf("%w: username already taken", ErrConflict)
	ErrReferralCodeTaken   = fmt.Errorf("%w: referral code already taken", ErrConflict)
	ErrDuplicateRelation   = fmt.Errorf("%w: referral relation already exists", ErrConflict)
	ErrAlreadyConfirmed    = fmt.Errorf("%w: transaction already confirmed", ErrConflict)
	ErrInvalidReferralCode = fmt.Errorf("%w: invalid referral code", ErrValidation)
	ErrInvalidAmount       = fmt.Errorf("%w: invalid amount", ErrValidation)
	ErrInvalidCurrency     = fmt.Errorf("%w: invalid currency", ErrValidation)
	ErrInvalidType         = fmt.Errorf("%w: invalid transaction type", ErrValidation)
	ErrSelfReferral        = fmt.Errorf("%w: member cannot refer itself", ErrValidation)
	ErrNotDeposit          = fmt.Errorf("%w: transaction is not a deposit", ErrValidation)
	ErrInvalidUsername     = fmt.Errorf("%w: username must be 3-50 letters, digits, dots or underscores", ErrValidation)
	ErrInvalidCredentials  = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	ErrAdminOnly           = fmt.Errorf("%w: admin access required", ErrForbidden)
)

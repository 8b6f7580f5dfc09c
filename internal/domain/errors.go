package domain

import "errors"

var (
	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTransactionSettled  = errors.New("cannot edit a fully settled transaction")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrMissingToMember     = errors.New("transfer requires a to member")
	ErrInvalidType         = errors.New("type must be income, expense or transfer")

	// Settlement errors
	ErrSettlementNotFound    = errors.New("settlement not found")
	ErrAlreadySettled        = errors.New("already fully settled")
	ErrSettlementNotRequired = errors.New("this transaction does not require settlement")
	ErrExceedsRemaining      = errors.New("amount exceeds remaining balance")
	ErrStatusRegression      = errors.New("settlement status cannot move backwards")

	// Membership errors
	ErrForbidden          = errors.New("access denied")
	ErrMembershipNotFound = errors.New("membership not found")

	// Category errors
	ErrCategoryNotFound = errors.New("category not found")

	// Auth errors
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

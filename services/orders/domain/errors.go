package domain

import "errors"

// Sentinel errors for the orders domain. Use errors.Is() to check these.
var (
	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidTemplate indicates a claim was attempted with an empty item template.
	ErrInvalidTemplate = errors.New("invalid item template")

	// ErrInvalidBatchID indicates a batch id that is empty or equal to the
	// unassigned sentinel.
	ErrInvalidBatchID = errors.New("invalid batch id")

	// ErrInvalidStatus indicates an empty item status.
	ErrInvalidStatus = errors.New("invalid item status")

	// ErrNoDocuments indicates a merge dispatch that names no documents.
	ErrNoDocuments = errors.New("no documents to merge")
)

// Package services contains stateless domain services for the orders bounded
// context. Domain services enforce business rules that operate purely on
// domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"fmt"
	"strings"

	domain "github.com/ghuser/pressroom/services/orders/domain"
	"github.com/ghuser/pressroom/services/orders/domain/models"
)

// ValidateClaim checks the inputs of a batch claim before it reaches the
// store. The template must be a non-empty batching key and the batch id must
// parse as an assigned BatchRef (non-empty, not the unassigned sentinel).
func ValidateClaim(template, batchID string) (models.BatchRef, error) {
	if strings.TrimSpace(template) == "" {
		return "", fmt.Errorf("%w: template must not be empty", domain.ErrInvalidTemplate)
	}
	ref, err := models.NewBatchRef(batchID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidBatchID, err)
	}
	return ref, nil
}

// ValidatePropagation checks the inputs of a batch-wide status update.
// The status value itself is deliberately unconstrained beyond non-emptiness:
// status names are operationally defined by the shop floor, and no transition
// table is enforced.
func ValidatePropagation(batchID, status string) (models.BatchRef, models.Status, error) {
	ref, err := models.NewBatchRef(batchID)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", domain.ErrInvalidBatchID, err)
	}
	if strings.TrimSpace(status) == "" {
		return "", "", fmt.Errorf("%w: status must not be empty", domain.ErrInvalidStatus)
	}
	return ref, models.Status(status), nil
}

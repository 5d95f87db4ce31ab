package errhttp

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ordersdomain "github.com/ghuser/pressroom/services/orders/domain"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"order not found", ordersdomain.ErrOrderNotFound, http.StatusNotFound},
		{"invalid batch id", ordersdomain.ErrInvalidBatchID, http.StatusUnprocessableEntity},
		{"invalid template", ordersdomain.ErrInvalidTemplate, http.StatusUnprocessableEntity},
		{"invalid status", ordersdomain.ErrInvalidStatus, http.StatusUnprocessableEntity},
		{"no documents", ordersdomain.ErrNoDocuments, http.StatusBadRequest},
		{"wrapped sentinel", fmt.Errorf("claim batch: %w", ordersdomain.ErrInvalidBatchID), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), `"error"`) {
				t.Fatalf("expected json error body, got %q", rec.Body.String())
			}
		})
	}
}

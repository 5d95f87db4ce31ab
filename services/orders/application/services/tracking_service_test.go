package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/ghuser/pressroom/services/orders/infrastructure/persistence/memory"
)

func TestTrackingService_Ingest(t *testing.T) {
	ctx := context.Background()

	t.Run("archives payloads verbatim", func(t *testing.T) {
		repo := memory.NewTrackingRepository()
		svc := NewTrackingService(repo)

		payloads := [][]byte{
			[]byte(`{"carrier":"ups","tracking":"1Z999"}`),
			[]byte("plain text, not json"),
			{},
		}
		for _, p := range payloads {
			if _, err := svc.Ingest(ctx, p); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		events := repo.Events()
		if len(events) != len(payloads) {
			t.Fatalf("expected %d events, got %d", len(payloads), len(events))
		}
		for i, e := range events {
			if !bytes.Equal(e.Payload, payloads[i]) {
				t.Fatalf("event %d: payload was altered", i)
			}
		}
	})

	t.Run("duplicate payloads become distinct events", func(t *testing.T) {
		repo := memory.NewTrackingRepository()
		svc := NewTrackingService(repo)

		payload := []byte(`{"tracking":"1Z999"}`)
		a, err := svc.Ingest(ctx, payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := svc.Ingest(ctx, payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ID == b.ID {
			t.Fatal("expected distinct event ids")
		}
	})
}

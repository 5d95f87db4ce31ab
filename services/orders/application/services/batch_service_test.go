package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ghuser/pressroom/pkg/config"
	"github.com/ghuser/pressroom/pkg/logger"
	ordersdomain "github.com/ghuser/pressroom/services/orders/domain"
	"github.com/ghuser/pressroom/services/orders/domain/models"
	"github.com/ghuser/pressroom/services/orders/domain/repositories"
	"github.com/ghuser/pressroom/services/orders/infrastructure/persistence/memory"
)

func testLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

// stubManifests records writes without producing files.
type stubManifests struct {
	writes int
	fail   error
}

func (s *stubManifests) Write(_ context.Context, _ models.BatchRef, _ []*models.Item) (string, error) {
	if s.fail != nil {
		return "", s.fail
	}
	s.writes++
	return "/tmp/manifest.xlsx", nil
}

// failingStatusRepo makes every status propagation fail.
type failingStatusRepo struct {
	repositories.OrderRepository
}

func (f *failingStatusRepo) UpdateBatchStatus(context.Context, models.BatchRef, models.Status) error {
	return errors.New("store unavailable")
}

func seedItems(t *testing.T, repo *memory.Repository, templates ...string) {
	t.Helper()
	order := models.NewOrder("SO-1", "ACCT-1")
	for _, tpl := range templates {
		order.AddItem("", tpl, "", "", models.ShippingAddress{})
	}
	if err := repo.CreateOrder(context.Background(), order); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestBatchService_Claim(t *testing.T) {
	ctx := context.Background()

	t.Run("claims matching unbatched items", func(t *testing.T) {
		repo := memory.NewRepository()
		seedItems(t, repo, "mug", "mug", "shirt")
		svc := NewBatchService(repo, &stubManifests{}, testLogger())

		claimed, err := svc.Claim(ctx, "mug", "B1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claimed != 2 {
			t.Fatalf("expected 2 claimed, got %d", claimed)
		}
	})

	t.Run("zero claims is a success", func(t *testing.T) {
		svc := NewBatchService(memory.NewRepository(), &stubManifests{}, testLogger())
		claimed, err := svc.Claim(ctx, "mug", "B1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claimed != 0 {
			t.Fatalf("expected 0 claimed, got %d", claimed)
		}
	})

	t.Run("rejects sentinel batch id", func(t *testing.T) {
		svc := NewBatchService(memory.NewRepository(), &stubManifests{}, testLogger())
		if _, err := svc.Claim(ctx, "mug", "-1"); !errors.Is(err, ordersdomain.ErrInvalidBatchID) {
			t.Fatalf("expected ErrInvalidBatchID, got %v", err)
		}
	})

	t.Run("rejects empty template", func(t *testing.T) {
		svc := NewBatchService(memory.NewRepository(), &stubManifests{}, testLogger())
		if _, err := svc.Claim(ctx, "", "B1"); !errors.Is(err, ordersdomain.ErrInvalidTemplate) {
			t.Fatalf("expected ErrInvalidTemplate, got %v", err)
		}
	})
}

func TestBatchService_Propagate(t *testing.T) {
	ctx := context.Background()

	t.Run("sets status on the whole batch", func(t *testing.T) {
		repo := memory.NewRepository()
		seedItems(t, repo, "mug", "mug")
		svc := NewBatchService(repo, &stubManifests{}, testLogger())

		if _, err := svc.Claim(ctx, "mug", "B1"); err != nil {
			t.Fatalf("claim: %v", err)
		}
		if err := svc.Propagate(ctx, "B1", "printed"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items, _ := repo.FindItemsByBatch(ctx, models.BatchRef("B1"))
		for _, it := range items {
			if it.Status != models.Status("printed") {
				t.Fatalf("expected printed, got %q", it.Status)
			}
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		repo := memory.NewRepository()
		seedItems(t, repo, "mug")
		svc := NewBatchService(repo, &stubManifests{}, testLogger())

		if _, err := svc.Claim(ctx, "mug", "B1"); err != nil {
			t.Fatalf("claim: %v", err)
		}
		for i := 0; i < 3; i++ {
			if err := svc.Propagate(ctx, "B1", "printed"); err != nil {
				t.Fatalf("pass %d: %v", i, err)
			}
		}

		items, _ := repo.FindItemsByBatch(ctx, models.BatchRef("B1"))
		if len(items) != 1 || items[0].Status != models.Status("printed") {
			t.Fatalf("unexpected state after repeated propagation: %+v", items)
		}
	})

	t.Run("rejects empty status", func(t *testing.T) {
		svc := NewBatchService(memory.NewRepository(), &stubManifests{}, testLogger())
		if err := svc.Propagate(ctx, "B1", ""); !errors.Is(err, ordersdomain.ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestBatchService_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("returns pre-propagation state and flips batch to sorting", func(t *testing.T) {
		repo := memory.NewRepository()
		seedItems(t, repo, "mug", "mug")
		manifests := &stubManifests{}
		svc := NewBatchService(repo, manifests, testLogger())

		if _, err := svc.Claim(ctx, "mug", "B1"); err != nil {
			t.Fatalf("claim: %v", err)
		}

		items, err := svc.Export(ctx, "B1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if manifests.writes != 1 {
			t.Fatalf("expected 1 manifest write, got %d", manifests.writes)
		}
		for _, it := range items {
			if it.Status != models.StatusBatched {
				t.Fatalf("export must return the batch as it stood before the flip, got %q", it.Status)
			}
		}

		after, _ := repo.FindItemsByBatch(ctx, models.BatchRef("B1"))
		for _, it := range after {
			if it.Status != models.StatusSorting {
				t.Fatalf("expected sorting after export, got %q", it.Status)
			}
		}
	})

	t.Run("manifest failure aborts the export", func(t *testing.T) {
		repo := memory.NewRepository()
		seedItems(t, repo, "mug")
		svc := NewBatchService(repo, &stubManifests{fail: errors.New("disk full")}, testLogger())

		if _, err := svc.Claim(ctx, "mug", "B1"); err != nil {
			t.Fatalf("claim: %v", err)
		}
		if _, err := svc.Export(ctx, "B1"); err == nil {
			t.Fatal("expected error, got nil")
		}

		items, _ := repo.FindItemsByBatch(ctx, models.BatchRef("B1"))
		for _, it := range items {
			if it.Status != models.StatusBatched {
				t.Fatalf("status must be untouched when the manifest fails, got %q", it.Status)
			}
		}
	})

	t.Run("propagation failure after the manifest still returns items", func(t *testing.T) {
		repo := memory.NewRepository()
		seedItems(t, repo, "mug", "mug")
		base := NewBatchService(repo, &stubManifests{}, testLogger())
		if _, err := base.Claim(ctx, "mug", "B1"); err != nil {
			t.Fatalf("claim: %v", err)
		}

		manifests := &stubManifests{}
		svc := NewBatchService(&failingStatusRepo{OrderRepository: repo}, manifests, testLogger())

		items, err := svc.Export(ctx, "B1")
		if err != nil {
			t.Fatalf("propagation failure must not fail the export: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if manifests.writes != 1 {
			t.Fatalf("expected 1 manifest write, got %d", manifests.writes)
		}
	})

	t.Run("empty batch exports an empty manifest", func(t *testing.T) {
		manifests := &stubManifests{}
		svc := NewBatchService(memory.NewRepository(), manifests, testLogger())

		items, err := svc.Export(ctx, "B1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected empty item set, got %d", len(items))
		}
		if manifests.writes != 1 {
			t.Fatal("an empty batch still gets a manifest")
		}
	})
}

func TestBatchService_Download(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	seedItems(t, repo, "mug")
	manifests := &stubManifests{}
	svc := NewBatchService(repo, manifests, testLogger())

	if _, err := svc.Claim(ctx, "mug", "B1"); err != nil {
		t.Fatalf("claim: %v", err)
	}

	items, err := svc.Download(ctx, "B1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Status != models.StatusBatched {
		t.Fatalf("download must return the pre-flip state, got %+v", items)
	}
	if manifests.writes != 0 {
		t.Fatal("download must not regenerate the manifest")
	}

	after, _ := repo.FindItemsByBatch(ctx, models.BatchRef("B1"))
	if after[0].Status != models.StatusSorting {
		t.Fatalf("expected sorting after download, got %q", after[0].Status)
	}
}

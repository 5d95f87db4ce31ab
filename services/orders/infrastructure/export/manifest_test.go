package export

import (
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ghuser/pressroom/services/orders/domain/models"
)

func TestManifestWriter_Write(t *testing.T) {
	ctx := context.Background()

	t.Run("writes one row per item in order", func(t *testing.T) {
		w, err := NewManifestWriter(t.TempDir())
		if err != nil {
			t.Fatalf("new writer: %v", err)
		}

		order := models.NewOrder("SO-1", "ACCT-1")
		first := order.AddItem("SI-1", "mug", "https://cdn/f1.pdf", "https://cdn/b1.pdf", models.ShippingAddress{Name: "Ada", Town: "Springfield"})
		second := order.AddItem("SI-2", "mug", "", "", models.ShippingAddress{Name: "Grace"})
		for _, it := range order.Items {
			it.Batch = models.BatchRef("B1")
			it.Status = models.StatusBatched
		}

		path, err := w.Write(ctx, models.BatchRef("B1"), order.Items)
		if err != nil {
			t.Fatalf("write: %v", err)
		}
		if path != w.Path(models.BatchRef("B1")) {
			t.Fatalf("expected path %q, got %q", w.Path(models.BatchRef("B1")), path)
		}

		f, err := excelize.OpenFile(path)
		if err != nil {
			t.Fatalf("reopen manifest: %v", err)
		}
		defer f.Close() //nolint:errcheck

		rows, err := f.GetRows(manifestSheet)
		if err != nil {
			t.Fatalf("read rows: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected header + 2 rows, got %d", len(rows))
		}
		if rows[0][0] != "ItemID" || rows[0][3] != "BatchID" {
			t.Fatalf("unexpected header: %v", rows[0])
		}
		if rows[1][0] != first.ID.String() || rows[2][0] != second.ID.String() {
			t.Fatal("rows must follow item order")
		}
		if rows[1][1] != "SI-1" || rows[1][2] != "mug" || rows[1][3] != "B1" || rows[1][4] != "batched" {
			t.Fatalf("unexpected first row: %v", rows[1])
		}
		if rows[1][7] != "Ada" {
			t.Fatalf("expected shipping name in column 8, got %v", rows[1])
		}
	})

	t.Run("empty batch writes a header-only manifest", func(t *testing.T) {
		w, err := NewManifestWriter(t.TempDir())
		if err != nil {
			t.Fatalf("new writer: %v", err)
		}

		path, err := w.Write(ctx, models.BatchRef("B9"), nil)
		if err != nil {
			t.Fatalf("write: %v", err)
		}

		f, err := excelize.OpenFile(path)
		if err != nil {
			t.Fatalf("reopen manifest: %v", err)
		}
		defer f.Close() //nolint:errcheck

		rows, err := f.GetRows(manifestSheet)
		if err != nil {
			t.Fatalf("read rows: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected header only, got %d rows", len(rows))
		}
	})

	t.Run("re-export overwrites the previous artifact", func(t *testing.T) {
		w, err := NewManifestWriter(t.TempDir())
		if err != nil {
			t.Fatalf("new writer: %v", err)
		}

		order := models.NewOrder("SO-1", "ACCT-1")
		order.AddItem("SI-1", "mug", "", "", models.ShippingAddress{})

		if _, err := w.Write(ctx, models.BatchRef("B1"), order.Items); err != nil {
			t.Fatalf("first write: %v", err)
		}
		path, err := w.Write(ctx, models.BatchRef("B1"), nil)
		if err != nil {
			t.Fatalf("second write: %v", err)
		}

		f, err := excelize.OpenFile(path)
		if err != nil {
			t.Fatalf("reopen manifest: %v", err)
		}
		defer f.Close() //nolint:errcheck

		rows, err := f.GetRows(manifestSheet)
		if err != nil {
			t.Fatalf("read rows: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected the overwrite to win, got %d rows", len(rows))
		}
	})
}

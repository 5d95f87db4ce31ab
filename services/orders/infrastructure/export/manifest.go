// Package export produces tabular batch manifests for the sorting floor.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ghuser/pressroom/services/orders/domain/models"
)

const manifestSheet = "Sheet1"

// manifestHeader defines the column order of every manifest. Downstream
// sorting tooling reads these by position, so the order is part of the
// artifact contract.
var manifestHeader = []string{
	"ItemID", "SourceItemID", "ItemTemplate", "BatchID", "ItemStatus",
	"ArtFrontUrl", "ArtBackUrl",
	"ShippingName", "ShippingLine1", "ShippingLine2",
	"ShippingTown", "ShippingState", "ShippingCountry", "ShippingZip",
}

// ManifestWriter renders batch manifests as .xlsx workbooks, one artifact per
// batch id. Re-exporting a batch overwrites the previous artifact.
type ManifestWriter struct {
	dir string
}

// NewManifestWriter returns a writer that stores manifests under dir,
// creating it if needed.
func NewManifestWriter(dir string) (*ManifestWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create manifest dir: %w", err)
	}
	return &ManifestWriter{dir: dir}, nil
}

// Write renders one row per item and saves the workbook as batch-<id>.xlsx.
// Returns the path of the written artifact.
func (w *ManifestWriter) Write(ctx context.Context, batch models.BatchRef, items []*models.Item) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	for col, name := range manifestHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(manifestSheet, cell, name); err != nil {
			return "", fmt.Errorf("write header: %w", err)
		}
	}

	for row, item := range items {
		values := []string{
			item.ID.String(), item.SourceItemID, item.Template,
			item.Batch.String(), item.Status.String(),
			item.ArtFrontURL, item.ArtBackURL,
			item.Shipping.Name, item.Shipping.Line1, item.Shipping.Line2,
			item.Shipping.Town, item.Shipping.State, item.Shipping.Country,
			item.Shipping.ZipCode,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(manifestSheet, cell, v); err != nil {
				return "", fmt.Errorf("write row: %w", err)
			}
		}
	}

	path := w.Path(batch)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save manifest: %w", err)
	}
	return path, nil
}

// Path returns the artifact location for a batch without writing anything.
func (w *ManifestWriter) Path(batch models.BatchRef) string {
	return filepath.Join(w.dir, fmt.Sprintf("batch-%s.xlsx", batch))
}

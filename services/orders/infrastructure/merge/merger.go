// Package merge combines print-ready documents into single PDFs.
//
// Merging runs in the worker process, detached from the request that asked
// for it: there is no completion signal back and no cancellation once a job
// is picked up. Failures are logged by the caller and never surfaced.
package merge

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/ghuser/pressroom/services/orders/domain/events"
)

// Merger downloads the documents named by a merge request and combines them
// into one PDF under dir.
type Merger struct {
	dir    string
	client *http.Client
}

// NewMerger returns a Merger writing artifacts under dir, creating it if needed.
func NewMerger(dir string) (*Merger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create merge dir: %w", err)
	}
	return &Merger{
		dir: dir,
		// Art documents can be large; allow slow origins but not forever.
		client: &http.Client{Timeout: 5 * time.Minute},
	}, nil
}

// Merge fetches each document and merges them in request order into
// <dir>/<output>. Returns the artifact path.
func (m *Merger) Merge(ctx context.Context, req events.MergeRequestedEvent) (string, error) {
	if len(req.Documents) == 0 {
		return "", fmt.Errorf("merge request names no documents")
	}

	tmp, err := os.MkdirTemp("", "pressroom-merge-")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp) //nolint:errcheck

	inputs := make([]string, 0, len(req.Documents))
	for i, url := range req.Documents {
		path := filepath.Join(tmp, fmt.Sprintf("doc-%03d.pdf", i))
		if err := m.fetch(ctx, url, path); err != nil {
			return "", fmt.Errorf("fetch document %q: %w", url, err)
		}
		inputs = append(inputs, path)
	}

	output := req.Output
	if output == "" {
		output = fmt.Sprintf("merged-%s.pdf", req.EventID)
	}
	out := filepath.Join(m.dir, filepath.Base(output))

	if err := api.MergeCreateFile(inputs, out, false, nil); err != nil {
		return "", fmt.Errorf("merge documents: %w", err)
	}
	return out, nil
}

func (m *Merger) fetch(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download: unexpected status %d", resp.StatusCode)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

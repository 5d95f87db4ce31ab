package models

import (
	"encoding/json"
	"testing"
)

func TestNewBatchRef(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		ref, err := NewBatchRef("B1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ref.Assigned() {
			t.Fatal("expected ref to be assigned")
		}
		if ref.String() != "B1" {
			t.Fatalf("expected %q, got %q", "B1", ref.String())
		}
	})

	t.Run("empty id returns error", func(t *testing.T) {
		if _, err := NewBatchRef(""); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("sentinel id returns error", func(t *testing.T) {
		if _, err := NewBatchRef(UnassignedSentinel); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestBatchRef_Unassigned(t *testing.T) {
	var ref BatchRef
	if ref.Assigned() {
		t.Fatal("zero value must be unassigned")
	}
	if ref.String() != UnassignedSentinel {
		t.Fatalf("expected sentinel %q, got %q", UnassignedSentinel, ref.String())
	}
}

func TestBatchRef_JSON(t *testing.T) {
	t.Run("unassigned marshals as sentinel", func(t *testing.T) {
		var ref BatchRef
		b, err := json.Marshal(ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != `"-1"` {
			t.Fatalf("expected %q, got %q", `"-1"`, string(b))
		}
	})

	t.Run("assigned marshals as id", func(t *testing.T) {
		ref := BatchRef("B7")
		b, err := json.Marshal(ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != `"B7"` {
			t.Fatalf("expected %q, got %q", `"B7"`, string(b))
		}
	})

	t.Run("sentinel unmarshals as unassigned", func(t *testing.T) {
		var ref BatchRef
		if err := json.Unmarshal([]byte(`"-1"`), &ref); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ref.Assigned() {
			t.Fatal("expected unassigned ref")
		}
	})

	t.Run("id round-trips", func(t *testing.T) {
		var ref BatchRef
		if err := json.Unmarshal([]byte(`"B7"`), &ref); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ref != BatchRef("B7") {
			t.Fatalf("expected B7, got %q", ref)
		}
	})
}

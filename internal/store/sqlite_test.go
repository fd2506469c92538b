package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func openTestStore(t *testing.T) (*SQLite, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "learnai.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%q) failed: %v", path, err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestSQLiteRoundtrip(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	in := payload{Name: "algebra", Count: 3}
	if err := s.Save(ctx, "k", in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var out payload
	found, err := s.Load(ctx, "k", &out)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !found {
		t.Fatal("Load reported absent for saved key")
	}
	if out != in {
		t.Errorf("Load = %+v, want %+v", out, in)
	}
}

func TestSQLiteLoadMissingKey(t *testing.T) {
	s, _ := openTestStore(t)

	var out payload
	found, err := s.Load(context.Background(), "nope", &out)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if found {
		t.Error("Load reported found for missing key")
	}
}

func TestSQLiteSaveOverwrites(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "k", payload{Name: "old"}); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := s.Save(ctx, "k", payload{Name: "new"}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	var out payload
	if _, err := s.Load(ctx, "k", &out); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.Name != "new" {
		t.Errorf("Load after overwrite = %q, want %q", out.Name, "new")
	}
}

func TestSQLiteCorruptBlob(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	if err := s.PutRaw(ctx, "k", "{not json"); err != nil {
		t.Fatalf("PutRaw failed: %v", err)
	}

	var out payload
	_, err := s.Load(ctx, "k", &out)
	var de *ErrDeserialization
	if !errors.As(err, &de) {
		t.Fatalf("Load error = %v, want *ErrDeserialization", err)
	}
	if de.Key != "k" {
		t.Errorf("ErrDeserialization.Key = %q, want %q", de.Key, "k")
	}
}

func TestSQLiteRemove(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "k", payload{Name: "x"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Remove(ctx, "k"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	var out payload
	found, err := s.Load(ctx, "k", &out)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if found {
		t.Error("key still present after Remove")
	}

	// Removing an absent key is not an error.
	if err := s.Remove(ctx, "k"); err != nil {
		t.Errorf("Remove of absent key failed: %v", err)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	s, path := openTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "k", payload{Name: "durable", Count: 7}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	var out payload
	found, err := reopened.Load(ctx, "k", &out)
	if err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if !found || out.Name != "durable" || out.Count != 7 {
		t.Errorf("Load after reopen = (%v, %+v), want durable payload", found, out)
	}
}

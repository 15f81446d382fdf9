package local

import (
	"bytes"
	"context"
	"io"
	"testing"
)

func TestSaveOpenExistsDelete(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	n, err := store.Save(ctx, "photo.png", "image/png", bytes.NewReader([]byte("png-bytes")))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if n != int64(len("png-bytes")) {
		t.Fatalf("expected %d bytes written, got %d", len("png-bytes"), n)
	}

	ok, err := store.Exists(ctx, "photo.png")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Fatalf("expected stored file to exist")
	}

	rc, err := store.Open(ctx, "photo.png")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected content %q", data)
	}

	if err := store.Delete(ctx, "photo.png"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	ok, err = store.Exists(ctx, "photo.png")
	if err != nil {
		t.Fatalf("Exists after delete: %v", err)
	}
	if ok {
		t.Fatalf("expected file removed")
	}
}

func TestDeleteMissingFileIsNoOp(t *testing.T) {
	store := New(t.TempDir())

	if err := store.Delete(context.Background(), "never-stored.png"); err != nil {
		t.Fatalf("Delete of missing file: %v", err)
	}
}

func TestSaveRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())

	if _, err := store.Save(context.Background(), "../escape.png", "image/png", bytes.NewReader(nil)); err == nil {
		t.Fatalf("expected error for traversal name")
	}
}

func TestSaveOverwritesExisting(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	if _, err := store.Save(ctx, "photo.png", "image/png", bytes.NewReader([]byte("first"))); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if _, err := store.Save(ctx, "photo.png", "image/png", bytes.NewReader([]byte("second"))); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	rc, err := store.Open(ctx, "photo.png")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "second" {
		t.Fatalf("expected overwrite, got %q", data)
	}
}

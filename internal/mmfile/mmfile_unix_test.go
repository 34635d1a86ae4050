//go:build unix

package mmfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestMapReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.bin")
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if !bytes.Equal(data, want) {
		t.Fatalf("mapped %x, want %x", data, want)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("second cleanup should be a no-op, got %v", err)
	}
}

func TestMapEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	defer cleanup()
	if len(data) != 0 {
		t.Fatalf("expected empty mapping, got %d bytes", len(data))
	}
}

func TestUpdatePersistsEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.bin")
	if err := os.WriteFile(path, make([]byte, 16), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := Update(path, func(data []byte) error {
		data[3] = 0x7E
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got[3] != 0x7E {
		t.Fatalf("edit not persisted: % x", got)
	}
}

func TestUpdateMissingFile(t *testing.T) {
	err := Update(filepath.Join(t.TempDir(), "absent.bin"), func([]byte) error { return nil })
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

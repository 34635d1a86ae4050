//go:build unix

// Package mmfile provides platform-specific helpers for memory-mapping save
// files.
package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map maps the file at path into memory read-only and returns its contents.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	data, cleanup, err := mapFile(f, unix.PROT_READ)
	if err != nil {
		return nil, nil, err
	}
	return data, cleanup, nil
}

// Update maps the file read-write, hands the mapped contents to fn for
// in-place editing, and msyncs the mapping back to disk when fn succeeds.
func Update(path string, fn func(data []byte) error) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	data, cleanup, err := mapFile(f, unix.PROT_READ|unix.PROT_WRITE)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := fn(data); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := unix.Msync(data, unix.MS_SYNC); err != nil {
		return fmt.Errorf("mmfile: msync: %w", err)
	}
	return nil
}

func mapFile(f *os.File, prot int) ([]byte, func() error, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), prot, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, cleanup, nil
}

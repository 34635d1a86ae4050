//go:build !unix

package mmfile

import "os"

// Map reads the entire file when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}

// Update reads the file, hands the contents to fn, and writes the buffer
// back when fn succeeds.
func Update(path string, fn func(data []byte) error) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := fn(data); err != nil {
		return err
	}
	return os.WriteFile(path, data, info.Mode().Perm())
}

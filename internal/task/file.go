package task

import (
	"errors"
	"fmt"
	"os"
)

// Load reads and decodes the snapshot at path.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	l, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return l, nil
}

// LoadOrInit loads the snapshot at path, or returns a fresh empty list
// owned by owner when no file exists yet. A missing file signals a first
// run, not an error.
func LoadOrInit(path, owner string) (*List, error) {
	l, err := Load(path)
	if err == nil {
		return l, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return New(owner), nil
	}
	return nil, err
}

// Save writes the snapshot encoding of the list to path.
//
// There is no file locking: concurrent invocations racing on the same
// snapshot file can corrupt it. One process per file is assumed.
func (l *List) Save(path string) error {
	data, err := l.Encode()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}

	return nil
}

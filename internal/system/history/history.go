// Released under an MIT license. See LICENSE.

// Package history persists the interactive shell's line history.
package history

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Name is the history file's name in the user's home directory.
const Name = ".lisp_history"

// Path returns the location of the history file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, Name), nil
}

// Load passes the history file at path to read. A missing file is not
// an error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save replaces the history file at path with what write produces.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

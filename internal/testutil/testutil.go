// Package testutil contains helpers shared by tests.
package testutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}

// WriteFile writes content to name inside a fresh temporary directory and
// returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	err := os.WriteFile(path, []byte(content), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	return path
}

// UnsetEnv removes key from the environment for the duration of the test.
func UnsetEnv(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, "")

	err := os.Unsetenv(key)
	if err != nil {
		t.Fatal(err)
	}
}

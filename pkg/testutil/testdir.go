package testutil

import (
	"os"
	"testing"
)

// InTempDir creates a new temporary directory, changes into it, and arranges
// to change back to the original working directory when the test finishes. It
// returns the path of the temporary directory.
func InTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	Chdir(t, dir)
	return dir
}

// Chdir changes into a directory, and arranges to change back to the original
// working directory when the test finishes.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWd); err != nil {
			panic(err)
		}
	})
}

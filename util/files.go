package util

import (
	"os"
	"path"
)

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// LocateFile searches for a file in the given directories, returning the
// first match. A filename with an explicit path is returned as-is if it
// exists.
func LocateFile(filename string, dirs []string) (string, bool) {
	if filename == "" {
		return "", false
	}
	if VerifyExists(filename) {
		return filename, true
	}
	for _, dir := range dirs {
		candidate := path.Join(dir, filename)
		if VerifyExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

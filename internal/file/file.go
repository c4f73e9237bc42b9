package file

import "os"

// Exists returns true if the file at the given path exists and false
// otherwise.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

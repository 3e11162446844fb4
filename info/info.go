// Package info reads the portal's static Info file.
package info

import (
	"fmt"
	"os"
)

// Load returns the contents of the Info file at path. A missing or
// unreadable file yields a placeholder naming the expected path; the Info
// tab never fails the app.
func Load(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("Missing: %s\nCreate this file and restart SIP.", path)
	}
	return string(data)
}

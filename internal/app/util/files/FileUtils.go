package files

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

func GetProjectRoot() (string, error) {
	_, filename, _, _ := runtime.Caller(0)
	return findGoModRoot(filename)
}

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}

func findGoModRoot(path string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, nil
		}
		newPath := filepath.Dir(path)
		if newPath == path {
			return "", fmt.Errorf("go.mod not found")
		}
		path = newPath
	}
}

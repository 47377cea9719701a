package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// go run ./deployment/ci/validation_pkg
//
// Fails when a package name differs from its folder or when a mockgen
// directive points at a mock file that is not committed.
func main() {
	hasError := false

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			name := info.Name()
			if path != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			return nil
		}

		pkg := extractPackage(string(content))
		folderName := filepath.Base(filepath.Dir(path))
		if pkg != "" && pkg != "main" && folderName != "." && pkg != folderName {
			fmt.Printf("ERROR: package '%s' does not match folder '%s' in: %s\n", pkg, folderName, path)
			hasError = true
		}

		if dest := mockDestination(string(content)); dest != "" {
			if _, err := os.Stat(filepath.Join(filepath.Dir(path), dest)); err != nil {
				fmt.Printf("ERROR: mock %s declared in %s is missing\n", dest, path)
				hasError = true
			}
		}

		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "walk: %v\n", err)
		os.Exit(1)
	}

	if hasError {
		os.Exit(1)
	}

	fmt.Println("No problems found.")
}

func extractPackage(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "package ") {
			return strings.TrimPrefix(line, "package ")
		}
	}
	return ""
}

func mockDestination(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "//go:generate mockgen ") {
			continue
		}
		for _, field := range strings.Fields(line) {
			if dest, ok := strings.CutPrefix(field, "-destination="); ok {
				return dest
			}
		}
	}
	return ""
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const directive = "//go:generate mockgen "

// Job is one mockgen directive found in a source file.
type Job struct {
	Dir  string
	File string
	Args []string
}

// go run ./deployment/ci/gen_mocks
//
// Regenerates every mock declared with a mockgen go:generate directive, next to
// its source file.
func main() {
	timeStart := time.Now()

	jobs := make(chan Job, 100)
	var wgWalk, wgMock sync.WaitGroup
	var failed sync.Map

	const numWorkers = 5

	for range numWorkers {
		wgMock.Add(1)
		go func() {
			defer wgMock.Done()
			for job := range jobs {
				args := append([]string{"run", "go.uber.org/mock/mockgen@v0.5.2"}, job.Args...)
				cmd := exec.Command("go", args...)
				cmd.Dir = job.Dir

				if out, err := cmd.CombinedOutput(); err != nil {
					failed.Store(job.File, true)
					fmt.Printf("Error generating mock for %s: %v\n%s", job.File, err, out)
					continue
				}
				fmt.Printf("Mock generated for: %s\n", job.File)
			}
		}()
	}

	wgWalk.Add(1)
	go func() {
		defer wgWalk.Done()
		defer close(jobs)

		err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if skipDir(path, info.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
				return nil
			}

			args, ok, err := findDirective(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
				return nil
			}
			if ok {
				jobs <- Job{Dir: filepath.Dir(path), File: path, Args: args}
			}

			return nil
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "walk: %v\n", err)
		}
	}()

	wgWalk.Wait()
	wgMock.Wait()

	fmt.Printf("\nTotal execution time: %s\n", time.Since(timeStart))

	hasError := false
	failed.Range(func(_, _ any) bool {
		hasError = true
		return false
	})
	if hasError {
		os.Exit(1)
	}
}

func skipDir(path, name string) bool {
	if path == "." {
		return false
	}
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" || name == "deployment"
}

func findDirective(path string) ([]string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if strings.HasPrefix(line, directive) {
			return strings.Fields(strings.TrimPrefix(line, directive)), true, nil
		}
	}

	return nil, false, s.Err()
}

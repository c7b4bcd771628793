// cmd/parse.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/Mehrn0ush/jobfileparser/internal/jobfile"
	"github.com/Mehrn0ush/jobfileparser/internal/taskxml"
)

var errColor = color.New(color.FgRed)

// banner frames each binary job report on stdout.
var banner = strings.Repeat("*", 72)

// parseFile decodes one file and prints its report. Files ending in .xml
// are treated as XML task definitions; everything else is decoded as a
// binary job file.
func parseFile(path string) error {
	if strings.EqualFold(filepath.Ext(path), ".xml") {
		return parseXMLFile(path)
	}
	return parseBinaryFile(path)
}

func parseBinaryFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	Debug("decoding %d bytes from %s", len(data), path)

	job, err := jobfile.DecodeJob(data)
	if err != nil {
		return err
	}

	fmt.Println(banner)
	fmt.Printf("File: %s\n", path)
	fmt.Println(job.Report())
	fmt.Println(banner)
	return nil
}

func parseXMLFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	task, err := taskxml.Decode(f)
	if err != nil {
		return err
	}
	fmt.Print(task.Report())
	return nil
}

// scanDirectory decodes every regular file in dir whose extension is in
// exts, one file at a time in directory-listing order. A failed file is
// reported to stderr and the scan moves on.
func scanDirectory(dir string, exts []string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		errColor.Fprintf(os.Stderr, "Unable to read directory %s: %v\n", dir, err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !hasExtension(path, exts) {
			continue
		}
		if err := parseFile(path); err != nil {
			errColor.Fprintf(os.Stderr, "Unable to process file %s: %v\n", path, err)
		}
	}
}

func hasExtension(path string, exts []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

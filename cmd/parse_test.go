// cmd/parse_test.go
package cmd

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalJobFile is the smallest decodable binary job: the scheduled-date
// window requires 88 bytes, and all-zero trailer counts decode to five
// empty strings.
func minimalJobFile() []byte {
	return make([]byte, 88)
}

func utf16leBytes(s string) []byte {
	var buf []byte
	for _, u := range utf16.Encode([]rune(s)) {
		buf = binary.LittleEndian.AppendUint16(buf, u)
	}
	return buf
}

func captureOutput(t *testing.T, fn func()) (string, string) {
	t.Helper()
	color.NoColor = true

	oldStdout, oldStderr := os.Stdout, os.Stderr
	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout, os.Stderr = outW, errW

	defer func() {
		os.Stdout, os.Stderr = oldStdout, oldStderr
	}()

	fn()

	require.NoError(t, outW.Close())
	require.NoError(t, errW.Close())
	os.Stdout, os.Stderr = oldStdout, oldStderr

	stdout, err := io.ReadAll(outR)
	require.NoError(t, err)
	stderr, err := io.ReadAll(errR)
	require.NoError(t, err)
	return string(stdout), string(stderr)
}

func TestHasExtension(t *testing.T) {
	exts := []string{"job", "xml"}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"job file", "At1.job", true},
		{"xml file", "task.xml", true},
		{"uppercase extension", "AT1.JOB", true},
		{"other extension", "notes.txt", false},
		{"no extension", "Makefile", false},
		{"extension only in directory name", "jobs.d/readme", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasExtension(tt.path, exts)
			if got != tt.want {
				t.Errorf("hasExtension(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseBinaryFileBannerFraming(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "At1.job")
	require.NoError(t, os.WriteFile(path, minimalJobFile(), 0644))

	var parseErr error
	stdout, _ := captureOutput(t, func() {
		parseErr = parseFile(path)
	})
	require.NoError(t, parseErr)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Greater(t, len(lines), 3)
	assert.Equal(t, banner, lines[0])
	assert.Equal(t, "File: "+path, lines[1])
	assert.Equal(t, banner, lines[len(lines)-1])
	assert.Contains(t, stdout, "Product Info: Unknown Version\n")
}

func TestParseXMLFileNoBanner(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "task.xml")
	doc := "<Task><RegistrationInfo><Author>admin</Author></RegistrationInfo></Task>"
	require.NoError(t, os.WriteFile(path, utf16leBytes(doc), 0644))

	var parseErr error
	stdout, _ := captureOutput(t, func() {
		parseErr = parseFile(path)
	})
	require.NoError(t, parseErr)

	assert.NotContains(t, stdout, "*")
	assert.Contains(t, stdout, "Author: admin\n")
	assert.Contains(t, stdout, "  AllowStartIfOnBatteries: (none)\n")
}

func TestParseFileTruncatedJob(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "short.job")
	require.NoError(t, os.WriteFile(path, make([]byte, 40), 0644))

	var parseErr error
	captureOutput(t, func() {
		parseErr = parseFile(path)
	})
	require.Error(t, parseErr)
}

func TestScanDirectoryContinuesAfterFailure(t *testing.T) {
	tmpDir := t.TempDir()
	goodJob := filepath.Join(tmpDir, "good.job")
	badJob := filepath.Join(tmpDir, "bad.job")
	require.NoError(t, os.WriteFile(goodJob, minimalJobFile(), 0644))
	require.NoError(t, os.WriteFile(badJob, make([]byte, 10), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("ignored"), 0644))

	stdout, stderr := captureOutput(t, func() {
		scanDirectory(tmpDir, defaultExtensions)
	})

	assert.Contains(t, stdout, "File: "+goodJob, "valid file must still be processed")
	assert.Contains(t, stderr, badJob)
	assert.Contains(t, stderr, "Unable to process file")
	assert.NotContains(t, stdout, "notes.txt")
}

func TestScanDirectoryUnreadable(t *testing.T) {
	stdout, stderr := captureOutput(t, func() {
		scanDirectory(filepath.Join(t.TempDir(), "does-not-exist"), defaultExtensions)
	})
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Unable to read directory")
}

package fs

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// ListSource supplies documents named by a docs-list file, one path per
// whitespace-separated field. Relative paths are resolved against the list
// file's directory. The noise-word list uses the same field format.
type ListSource struct {
	docsFile  string
	noiseFile string
	baseDir   string
}

// NewListSource creates a source reading document names from docsFile and
// noise words from noiseFile.
func NewListSource(docsFile, noiseFile string) *ListSource {
	return &ListSource{
		docsFile:  docsFile,
		noiseFile: noiseFile,
		baseDir:   filepath.Dir(docsFile),
	}
}

func (s *ListSource) DocumentIDs() ([]string, error) {
	return readFields(s.docsFile, "document list")
}

func (s *ListSource) NoiseWords() ([]string, error) {
	return readFields(s.noiseFile, "noise word list")
}

func (s *ListSource) Tokens(docID string) ([]string, error) {
	path := docID
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.baseDir, docID)
	}
	return readFields(path, "document")
}

// readFields scans a file into whitespace-separated fields.
func readFields(path, what string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s not found at %s: %w", what, path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	var fields []string
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s %s: %w", what, path, err)
	}
	return fields, nil
}

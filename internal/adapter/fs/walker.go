package fs

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// DirSource supplies documents by walking a directory tree. Every file
// matching the include patterns (and no exclude pattern) is a document,
// identified by its path relative to the root. An empty noiseFile means an
// empty noise-word set.
type DirSource struct {
	root      string
	includes  []string
	excludes  []string
	noiseFile string
}

// NewDirSource creates a directory-walking source.
func NewDirSource(root string, includes, excludes []string, noiseFile string) *DirSource {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	return &DirSource{
		root:      root,
		includes:  includes,
		excludes:  excludes,
		noiseFile: noiseFile,
	}
}

func (s *DirSource) DocumentIDs() ([]string, error) {
	root, err := filepath.Abs(s.root)
	if err != nil {
		return nil, err
	}

	var ids []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if s.shouldExclude(relPath + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if s.shouldInclude(relPath) && !s.shouldExclude(relPath) {
			ids = append(ids, relPath)
		}
		return nil
	})
	return ids, err
}

func (s *DirSource) NoiseWords() ([]string, error) {
	if s.noiseFile == "" {
		return nil, nil
	}
	return readFields(s.noiseFile, "noise word list")
}

func (s *DirSource) Tokens(docID string) ([]string, error) {
	return readFields(filepath.Join(s.root, docID), "document")
}

func (s *DirSource) shouldInclude(path string) bool {
	for _, pattern := range s.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (s *DirSource) shouldExclude(path string) bool {
	for _, pattern := range s.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Index.DocsFile != "docs.txt" {
		t.Errorf("expected DocsFile=docs.txt, got %s", cfg.Index.DocsFile)
	}
	if cfg.Index.NoiseWordsFile != "noisewords.txt" {
		t.Errorf("expected NoiseWordsFile=noisewords.txt, got %s", cfg.Index.NoiseWordsFile)
	}
	if cfg.Query.Limit != 5 {
		t.Errorf("expected Limit=5, got %d", cfg.Query.Limit)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "kwsearch.yaml")

	content := `
index:
  docs_file: books.txt
  noise_words_file: stop.txt
query:
  limit: 3
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Index.DocsFile != "books.txt" {
		t.Errorf("expected DocsFile=books.txt, got %s", cfg.Index.DocsFile)
	}
	if cfg.Index.NoiseWordsFile != "stop.txt" {
		t.Errorf("expected NoiseWordsFile=stop.txt, got %s", cfg.Index.NoiseWordsFile)
	}
	if cfg.Query.Limit != 3 {
		t.Errorf("expected Limit=3, got %d", cfg.Query.Limit)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "kwsearch.yaml")

	content := `
query:
  limit: 10
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Query.Limit != 10 {
		t.Errorf("expected Limit=10, got %d", cfg.Query.Limit)
	}
}

func TestIndexDBPath(t *testing.T) {
	path := IndexDBPath("/home/user/project")
	expected := filepath.Join("/home/user/project", ".kwsearch", "index.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}

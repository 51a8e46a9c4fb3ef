package fs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestListSource(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "AliceCh1.txt", "Alice was beginning to get very tired")
	writeFile(t, tmpDir, "Tale.txt", "It was the best of times")
	docsFile := writeFile(t, tmpDir, "docs.txt", "AliceCh1.txt\nTale.txt\n")
	noiseFile := writeFile(t, tmpDir, "noisewords.txt", "the\nof\nto\n")

	source := NewListSource(docsFile, noiseFile)

	ids, err := source.DocumentIDs()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ids, []string{"AliceCh1.txt", "Tale.txt"}) {
		t.Errorf("unexpected document ids: %v", ids)
	}

	noise, err := source.NoiseWords()
	if err != nil {
		t.Fatal(err)
	}
	if len(noise) != 3 {
		t.Errorf("expected 3 noise words, got %v", noise)
	}

	tokens, err := source.Tokens("Tale.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 6 || tokens[0] != "It" {
		t.Errorf("unexpected tokens: %v", tokens)
	}
}

func TestListSource_MissingFiles(t *testing.T) {
	tmpDir := t.TempDir()
	source := NewListSource(filepath.Join(tmpDir, "docs.txt"), filepath.Join(tmpDir, "noisewords.txt"))

	if _, err := source.DocumentIDs(); err == nil {
		t.Error("expected an error for a missing docs list")
	}
	if _, err := source.NoiseWords(); err == nil {
		t.Error("expected an error for a missing noise word list")
	}
	if _, err := source.Tokens("nope.txt"); err == nil {
		t.Error("expected an error for a missing document")
	}
}

func TestDirSource_WalksMatchingFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "a.txt", "alpha beta")
	writeFile(t, tmpDir, "sub/b.txt", "gamma")
	writeFile(t, tmpDir, "sub/c.md", "delta")
	writeFile(t, tmpDir, "skip/d.txt", "epsilon")

	source := NewDirSource(tmpDir, []string{"**/*.txt"}, []string{"skip/**"}, "")

	ids, err := source.DocumentIDs()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.txt", filepath.Join("sub", "b.txt")}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("expected %v, got %v", want, ids)
	}

	noise, err := source.NoiseWords()
	if err != nil {
		t.Fatal(err)
	}
	if noise != nil {
		t.Errorf("expected empty noise set without a noise file, got %v", noise)
	}

	tokens, err := source.Tokens("a.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tokens, []string{"alpha", "beta"}) {
		t.Errorf("unexpected tokens: %v", tokens)
	}
}

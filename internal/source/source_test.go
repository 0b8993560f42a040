package source

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestFileRecipeSource(t *testing.T) {
	path := writeTempFile(t, `# recipe collection

Hummus, http://example.com/hummus , 400g di ceci, 200g di tahina

  # another comment
Pane,http://example.com/pane
`)

	records, err := FileRecipeSource{Path: path}.Records()
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}

	want := [][]string{
		{"Hummus", "http://example.com/hummus", "400g di ceci", "200g di tahina"},
		{"Pane", "http://example.com/pane"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("got %v, want %v", records, want)
	}
}

func TestFileCatalogSource(t *testing.T) {
	path := writeTempFile(t, `# catalogo
carota
  aglio

# commento in mezzo
limone
`)

	names, err := FileCatalogSource{Path: path}.Names()
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}

	want := []string{"carota", "aglio", "limone"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestFileRecipeSource_MissingFile(t *testing.T) {
	_, err := FileRecipeSource{Path: filepath.Join(t.TempDir(), "nope.csv")}.Records()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSkipLine(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"# comment", true},
		{"  # indented comment", true},
		{"carota", false},
		{"titolo, url", false},
	}
	for _, c := range cases {
		if got := skipLine(c.line); got != c.want {
			t.Errorf("skipLine(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}

// Package source supplies recipe records and ingredient-catalog names
// to the resolution engine. File and HTTP variants share one line
// format: recipe records are comma-separated "title,url,line,line,..."
// rows, catalogs are one candidate name per line. Blank lines and lines
// starting with '#' are filtered here, before the engine sees them.
package source

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// RecipeSource supplies an ordered sequence of recipe records, each a
// slice of fields: title, url, then zero or more ingredient lines.
// Field-count validation is the engine's job, not the source's.
type RecipeSource interface {
	Records() ([][]string, error)
}

// CatalogSource supplies an ordered sequence of raw candidate
// ingredient names.
type CatalogSource interface {
	Names() ([]string, error)
}

// FileRecipeSource reads recipe records from a local CSV file.
type FileRecipeSource struct {
	Path string
}

func (s FileRecipeSource) Records() ([][]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseRecipeRecords(f)
}

// FileCatalogSource reads candidate ingredient names from a local text
// file, one per line.
type FileCatalogSource struct {
	Path string
}

func (s FileCatalogSource) Names() ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseCatalogNames(f)
}

// parseRecipeRecords splits the reader into comment-filtered,
// comma-separated field slices with surrounding whitespace trimmed.
func parseRecipeRecords(r io.Reader) ([][]string, error) {
	var records [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if skipLine(line) {
			continue
		}
		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		records = append(records, fields)
	}
	return records, scanner.Err()
}

func parseCatalogNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if skipLine(line) {
			continue
		}
		names = append(names, strings.TrimSpace(line))
	}
	return names, scanner.Err()
}

// skipLine reports whether the line is blank or a comment.
func skipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

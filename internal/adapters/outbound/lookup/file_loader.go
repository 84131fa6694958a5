// Package lookup loads the newline-delimited tool tables from a directory.
package lookup

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rtighilt/MARS/internal/domain"
)

// FileLoader implements domain.LookupLoader. Each table lives in
// <dir>/<table>.txt, one token per line.
type FileLoader struct{}

func New() *FileLoader {
	return &FileLoader{}
}

// Load reads every table in domain.AllTables. Any missing or unreadable
// file fails the whole load.
func (l *FileLoader) Load(dir string) (domain.LookupTables, error) {
	tables := make(domain.LookupTables, len(domain.AllTables))
	for _, id := range domain.AllTables {
		t, err := readTable(filepath.Join(dir, id.FileName()), id)
		if err != nil {
			return nil, err
		}
		tables[id] = t
	}
	return tables, nil
}

// readTable keeps lines verbatim apart from trailing whitespace. Blank lines
// and lines starting with '#' are ignored.
func readTable(path string, id domain.TableID) (domain.LookupTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.LookupTable{}, fmt.Errorf("%w: %s: %v", domain.ErrLookupTable, id, err)
	}
	defer f.Close()

	t := domain.LookupTable{ID: id}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRightFunc(sc.Text(), unicode.IsSpace)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t.Tokens = append(t.Tokens, line)
	}
	if err := sc.Err(); err != nil {
		return domain.LookupTable{}, fmt.Errorf("%w: %s: %v", domain.ErrLookupTable, id, err)
	}
	return t, nil
}

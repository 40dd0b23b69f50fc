package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Conceptual-Machines/scales-api/internal/theory"
	"github.com/Conceptual-Machines/scales-api/pkg/embedded"
)

// Entry is the human-facing description of a scale type
type Entry struct {
	Type        theory.ScaleType
	Description string
	Character   []string
}

// Catalog holds descriptions keyed by scale type. Read-only after Load.
type Catalog struct {
	entries map[theory.ScaleType]Entry
}

var expectedHeader = []string{"type", "description", "character"}

// Load parses the embedded scale catalog
func Load() (*Catalog, error) {
	return LoadFrom(bytes.NewReader(embedded.ScaleCatalogCsv))
}

// LoadFrom parses a catalog in CSV form: type,description,character where
// character is a semicolon separated list
func LoadFrom(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(expectedHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}
	for i, col := range expectedHeader {
		if strings.TrimSpace(header[i]) != col {
			return nil, fmt.Errorf("unexpected catalog column %d: got %q, want %q", i, header[i], col)
		}
	}

	c := &Catalog{entries: make(map[theory.ScaleType]Entry)}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog row: %w", err)
		}

		def, err := theory.LookupScale(record[0])
		if err != nil {
			return nil, fmt.Errorf("catalog row for %q: %w", record[0], err)
		}
		if _, dup := c.entries[def.Type]; dup {
			return nil, fmt.Errorf("duplicate catalog row for %s", def.Type)
		}

		c.entries[def.Type] = Entry{
			Type:        def.Type,
			Description: strings.TrimSpace(record[1]),
			Character:   splitCharacter(record[2]),
		}
	}
	return c, nil
}

// Describe returns the entry for a scale type
func (c *Catalog) Describe(t theory.ScaleType) (Entry, bool) {
	e, ok := c.entries[t]
	return e, ok
}

// Len is the number of described scale types
func (c *Catalog) Len() int {
	return len(c.entries)
}

func splitCharacter(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

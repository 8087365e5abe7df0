// Package dataset loads offline breach CSVs into typed records.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/breachwatch/breachwatch/internal/types"
)

// Required dataset columns; matched case-insensitively in the header.
var requiredColumns = []string{"email", "source", "breach_date", "compromised_data"}

// NotFoundError reports a missing offline dataset.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("offline dataset not found: %s", e.Path)
}

// SchemaError reports required columns absent from the dataset header.
type SchemaError struct {
	Path    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing expected columns: %s", e.Path, strings.Join(e.Missing, ", "))
}

// dateLayouts are tried in order when parsing breach_date cells.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// ParseDate coerces a breach_date cell into a time. Empty or unparseable
// values return the zero time ("unknown"), never an error.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Load reads one offline breach CSV. Column order is free and header names
// are case-insensitive; password_hash is optional. Every row must carry an
// email and a source.
func Load(path string) ([]types.BreachRecord, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &NotFoundError{Path: path}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", path, err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &SchemaError{Path: path, Missing: missing}
	}

	cell := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []types.BreachRecord
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, line, err)
		}
		rec := types.BreachRecord{
			Email:           cell(row, "email"),
			Source:          cell(row, "source"),
			BreachDate:      ParseDate(cell(row, "breach_date")),
			CompromisedData: cell(row, "compromised_data"),
			PasswordHash:    cell(row, "password_hash"),
		}
		if rec.Email == "" || rec.Source == "" {
			return nil, fmt.Errorf("%s: row %d: email and source are required", path, line)
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadGlob loads every dataset matching the given pattern and merges the
// rows in path order. A path without glob metacharacters loads as-is.
func LoadGlob(pattern string) ([]types.BreachRecord, error) {
	if !strings.ContainsAny(pattern, "*?[{") {
		return Load(pattern)
	}
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad dataset pattern %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, &NotFoundError{Path: pattern}
	}
	sort.Strings(paths)
	var all []types.BreachRecord
	for _, p := range paths {
		recs, err := Load(p)
		if err != nil {
			return nil, err
		}
		all = append(all, recs...)
	}
	return all, nil
}

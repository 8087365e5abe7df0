package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/breachwatch/breachwatch/internal/types"
)

// Artifact file names written into the output directory.
const (
	CSVName      = "exposed_accounts.csv"
	JSONName     = "results.json"
	MarkdownName = "sample_run_results.md"
)

var csvColumns = []string{"email", "source", "breach_date", "compromised_data", "password_hash"}

// WriteArtifacts writes the three report artifacts into outdir, creating
// it if needed. Each artifact goes to a temp file first and is renamed
// into place, so a failed run cannot leave a truncated report that looks
// complete.
func WriteArtifacts(outdir string, matches []types.BreachRecord, s types.Summary) (csvPath, jsonPath, mdPath string, err error) {
	if err = os.MkdirAll(outdir, 0o755); err != nil {
		return "", "", "", fmt.Errorf("create output dir: %w", err)
	}

	sorted := sortForExport(matches)

	csvPath = filepath.Join(outdir, CSVName)
	if err = writeAtomic(csvPath, func(w io.Writer) error { return writeCSV(w, sorted) }); err != nil {
		return "", "", "", fmt.Errorf("write %s: %w", CSVName, err)
	}

	jsonPath = filepath.Join(outdir, JSONName)
	if err = writeAtomic(jsonPath, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}); err != nil {
		return "", "", "", fmt.Errorf("write %s: %w", JSONName, err)
	}

	mdPath = filepath.Join(outdir, MarkdownName)
	if err = writeAtomic(mdPath, func(w io.Writer) error {
		_, werr := io.WriteString(w, Markdown(s, matches))
		return werr
	}); err != nil {
		return "", "", "", fmt.Errorf("write %s: %w", MarkdownName, err)
	}
	return csvPath, jsonPath, mdPath, nil
}

// sortForExport orders rows by (email, breach_date, source) ascending for
// a readable CSV. Unknown dates sort after known ones.
func sortForExport(matches []types.BreachRecord) []types.BreachRecord {
	out := make([]types.BreachRecord, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Email != b.Email {
			return a.Email < b.Email
		}
		if !a.BreachDate.Equal(b.BreachDate) {
			if !a.DateKnown() {
				return false
			}
			if !b.DateKnown() {
				return true
			}
			return a.BreachDate.Before(b.BreachDate)
		}
		return a.Source < b.Source
	})
	return out
}

func writeCSV(w io.Writer, matches []types.BreachRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return err
	}
	for _, r := range matches {
		date := ""
		if r.DateKnown() {
			date = r.BreachDate.Format("2006-01-02")
		}
		if err := cw.Write([]string{r.Email, r.Source, date, r.CompromisedData, r.PasswordHash}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeAtomic fills a temp file next to path and renames it into place.
func writeAtomic(path string, fill func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if err := fill(tmp); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	name := tmp.Name()
	tmp = nil
	return os.Rename(name, path)
}

// Package audit keeps an append-only history of scan runs.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunRecord is one line of the run history.
type RunRecord struct {
	Timestamp        time.Time `json:"timestamp"`
	RunID            string    `json:"run_id"`
	Dataset          string    `json:"dataset"`
	Domain           string    `json:"domain,omitempty"`
	EmailList        string    `json:"email_list,omitempty"`
	TotalMatches     int       `json:"total_matches"`
	UniqueEmails     int       `json:"unique_emails"`
	DistinctBreaches int       `json:"distinct_breaches"`
	RiskScore        float64   `json:"risk_score"`
	RiskBand         string    `json:"risk_band"`
	OutDir           string    `json:"out_dir"`
}

// Log appends and reads JSONL run records.
type Log struct {
	path string
}

// NewLog returns a Log stored as .breachwatch_audit.jsonl under root.
func NewLog(root string) *Log {
	return &Log{path: filepath.Join(root, ".breachwatch_audit.jsonl")}
}

// Append writes one record. Missing run IDs are filled in.
func (l *Log) Append(rec RunRecord) error {
	if rec.RunID == "" {
		rec.RunID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	// Owner-only: the log names targeted domains and datasets.
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}
	return nil
}

// History returns past runs, newest first. Unreadable lines are skipped.
func (l *Log) History() ([]RunRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec RunRecord
		if err := dec.Decode(&rec); err != nil {
			break
		}
		records = append(records, rec)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

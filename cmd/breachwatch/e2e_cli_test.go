package breachwatch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breachwatch/breachwatch/internal/audit"
	"github.com/breachwatch/breachwatch/internal/types"
)

const testHeader = "email,source,breach_date,compromised_data,password_hash\n"

func TestScan_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg")) // keep host config out

	datasetPath := filepath.Join(dir, "breaches.csv")
	require.NoError(t, os.WriteFile(datasetPath, []byte(testHeader+
		"alice@example.com,MegaCorp,2023-04-18,\"email, password\",abc\n"+
		"bob@notexample.com,MegaCorp,2023-04-18,email,\n"+
		"carol@example.com,OldDump,2016-11-02,\"email, dob\",\n"), 0o644))

	outDir := filepath.Join(dir, "reports")
	rootCmd.SetArgs([]string{"scan", "--domain", "example.com", "--offline", datasetPath, "--out", outDir, "--no-color"})
	require.NoError(t, rootCmd.Execute())

	// All three artifacts land in the output directory.
	for _, name := range []string{"exposed_accounts.csv", "results.json", "sample_run_results.md"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, "artifact %s", name)
	}

	b, err := os.ReadFile(filepath.Join(outDir, "results.json"))
	require.NoError(t, err)
	var s types.Summary
	require.NoError(t, json.Unmarshal(b, &s))
	assert.Equal(t, 2, s.TotalExposedAccounts)
	assert.Equal(t, 2, s.UniqueEmails)
	assert.Equal(t, 2, s.DistinctBreaches)
	assert.Empty(t, s.HIBPEnrichment)

	md, err := os.ReadFile(filepath.Join(outDir, "sample_run_results.md"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(md), "alice@example.com"))

	// The run lands in the audit history.
	records, err := audit.NewLog(dir).History()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].TotalMatches)
	assert.Equal(t, "example.com", records[0].Domain)
}

func TestScan_MissingDataset(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	rootCmd.SetArgs([]string{"scan", "--domain", "example.com", "--offline", filepath.Join(dir, "nope.csv"), "--out", filepath.Join(dir, "reports")})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offline dataset not found")

	// Fatal before any output: no artifacts, no audit entry.
	_, statErr := os.Stat(filepath.Join(dir, "reports"))
	assert.True(t, os.IsNotExist(statErr))
	_, histErr := audit.NewLog(dir).History()
	assert.Error(t, histErr)
}

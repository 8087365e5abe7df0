package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Contains(t, nf.Error(), "missing.csv")
}

func TestLoad_SchemaErrorListsMissingColumns(t *testing.T) {
	path := writeCSV(t, "bad.csv", "email,compromised_data\na@x.com,email\n")
	_, err := Load(path)
	require.Error(t, err)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"breach_date", "source"}, se.Missing)
}

func TestLoad_NormalizesHeaderAndCoercesDates(t *testing.T) {
	path := writeCSV(t, "ok.csv",
		"Source,EMAIL,Compromised_Data,breach_DATE\n"+
			"MegaCorp,a@x.com,\"email, password\",2023-04-18\n"+
			"MegaCorp,b@x.com,email,not-a-date\n"+
			"OldDump,c@x.com,email,\n")
	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "a@x.com", records[0].Email)
	assert.Equal(t, "MegaCorp", records[0].Source)
	assert.Equal(t, "email, password", records[0].CompromisedData)
	assert.Empty(t, records[0].PasswordHash)
	assert.True(t, records[0].DateKnown())
	assert.Equal(t, time.Date(2023, 4, 18, 0, 0, 0, 0, time.UTC), records[0].BreachDate)

	// Bad and empty dates are unknown, never an error.
	assert.False(t, records[1].DateKnown())
	assert.False(t, records[2].DateKnown())
}

func TestLoad_RowMissingRequiredField(t *testing.T) {
	path := writeCSV(t, "row.csv",
		"email,source,breach_date,compromised_data\n"+
			"a@x.com,src,2023-01-01,email\n"+
			",src,2023-01-01,email\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestLoadGlob_MergesFiles(t *testing.T) {
	dir := t.TempDir()
	header := "email,source,breach_date,compromised_data\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte(header+"a@x.com,s1,2023-01-01,email\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte(header+"b@x.com,s2,2024-01-01,email\n"), 0o644))

	records, err := LoadGlob(filepath.Join(dir, "*.csv"))
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "a@x.com", records[0].Email)
	assert.Equal(t, "b@x.com", records[1].Email)
}

func TestLoadGlob_NoMatches(t *testing.T) {
	_, err := LoadGlob(filepath.Join(t.TempDir(), "*.csv"))
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestParseDate_Layouts(t *testing.T) {
	for _, s := range []string{"2023-04-18", "2023/04/18", "04/18/2023", "2023-04-18 10:30:00"} {
		assert.False(t, ParseDate(s).IsZero(), "layout %q should parse", s)
	}
	assert.True(t, ParseDate("").IsZero())
	assert.True(t, ParseDate("18th of April").IsZero())
}

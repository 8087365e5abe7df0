package selector

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/breachwatch/breachwatch/internal/types"
)

func rec(email, source string) types.BreachRecord {
	return types.BreachRecord{Email: email, Source: source, CompromisedData: "email"}
}

func TestByDomain_SuffixOnly(t *testing.T) {
	records := []types.BreachRecord{
		rec("user@notexample.com", "a"),
		rec("USER@EXAMPLE.COM", "a"),
		rec("other@example.com", "b"),
		rec("user@sub.example.com", "c"),
	}
	got := ByDomain(records, "Example.com")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %v", len(got), got)
	}
	if got[0].Email != "USER@EXAMPLE.COM" || got[1].Email != "other@example.com" {
		t.Fatalf("unexpected matches: %v", got)
	}
}

func TestByEmails_CaseInsensitive(t *testing.T) {
	records := []types.BreachRecord{
		rec("Alice@Example.com", "a"),
		rec("bob@example.com", "a"),
	}
	got := ByEmails(records, []string{"ALICE@example.COM"})
	if len(got) != 1 || got[0].Email != "Alice@Example.com" {
		t.Fatalf("unexpected matches: %v", got)
	}
}

func TestUnion_DedupesFullRows(t *testing.T) {
	a := rec("alice@example.com", "src1")
	b := rec("bob@example.com", "src2")
	got := Union([]types.BreachRecord{a, b}, []types.BreachRecord{a})
	if len(got) != 2 {
		t.Fatalf("expected 2 unique rows, got %d", len(got))
	}
	// Same email+source but different date is a distinct row.
	c := a
	c.BreachDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got = Union([]types.BreachRecord{a}, []types.BreachRecord{c})
	if len(got) != 2 {
		t.Fatalf("rows differing only by date should both survive, got %d", len(got))
	}
}

func TestReadEmailList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emails.txt")
	content := "zed@x.com\n\nnot-an-email\n  alice@x.com  \nzed@x.com\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadEmailList(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"alice@x.com", "zed@x.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestReadEmailList_Missing(t *testing.T) {
	if _, err := ReadEmailList(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEmails_SortedDistinct(t *testing.T) {
	records := []types.BreachRecord{
		rec("B@x.com", "a"),
		rec("a@x.com", "a"),
		rec("b@X.com", "b"),
	}
	got := Emails(records)
	want := []string{"a@x.com", "b@x.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

package summary

import (
	"reflect"
	"testing"

	"github.com/valyala/fastjson"

	"logsum/internal/model"
)

func recordsFromJSON(t *testing.T, lines ...string) model.Collection {
	t.Helper()
	records := make(model.Collection, 0, len(lines))
	for _, line := range lines {
		records = append(records, model.NewRecord(fastjson.MustParse(line)))
	}
	return records
}

func TestSummarize_ByLevel(t *testing.T) {
	records := recordsFromJSON(t,
		`{"level":"INFO"}`,
		`{"level":"ERROR"}`,
		`{"level":"INFO"}`,
	)

	sum := Summarize(records)

	if got := sum.Count("INFO"); got != 2 {
		t.Fatalf("Count(INFO) = %d, want 2", got)
	}
	if got := sum.Count("ERROR"); got != 1 {
		t.Fatalf("Count(ERROR) = %d, want 1", got)
	}
	if got := sum.Total(); got != 3 {
		t.Fatalf("Total() = %d, want 3", got)
	}
}

func TestSummarize_UnknownFallback(t *testing.T) {
	records := recordsFromJSON(t,
		`{"msg":"no level field"}`,
		`42`,
		`["not","an","object"]`,
	)

	sum := Summarize(records)

	if got := sum.Count(model.LevelUnknown); got != 3 {
		t.Fatalf("Count(UNKNOWN) = %d, want 3", got)
	}
	if got := sum.Total(); got != 3 {
		t.Fatalf("Total() = %d, want 3", got)
	}
}

func TestSummarize_NonStringLevels(t *testing.T) {
	records := recordsFromJSON(t,
		`{"level":3}`,
		`{"level":3}`,
		`{"level":true}`,
		`{"level":""}`,
	)

	sum := Summarize(records)

	if got := sum.Count("3"); got != 2 {
		t.Fatalf("Count(3) = %d, want 2", got)
	}
	if got := sum.Count("true"); got != 1 {
		t.Fatalf("Count(true) = %d, want 1", got)
	}
	if got := sum.Count(""); got != 1 {
		t.Fatalf("Count of empty level = %d, want 1", got)
	}
}

func TestSummary_TotalMatchesCollectionLength(t *testing.T) {
	records := recordsFromJSON(t,
		`{"level":"DEBUG"}`,
		`{"level":"INFO"}`,
		`{"other":1}`,
		`null`,
		`{"level":"DEBUG"}`,
	)

	sum := Summarize(records)
	if got := sum.Total(); got != len(records) {
		t.Fatalf("Total() = %d, want %d", got, len(records))
	}
}

func TestSummary_SortedLexicographically(t *testing.T) {
	records := recordsFromJSON(t,
		`{"level":"WARN"}`,
		`{"level":"DEBUG"}`,
		`{"level":"INFO"}`,
		`{"level":"ERROR"}`,
	)

	sum := Summarize(records)

	wantLevels := []string{"DEBUG", "ERROR", "INFO", "WARN"}
	if got := sum.Levels(); !reflect.DeepEqual(got, wantLevels) {
		t.Fatalf("Levels() = %v, want %v", got, wantLevels)
	}

	wantSorted := []LevelCount{
		{Level: "DEBUG", Count: 1},
		{Level: "ERROR", Count: 1},
		{Level: "INFO", Count: 1},
		{Level: "WARN", Count: 1},
	}
	if got := sum.Sorted(); !reflect.DeepEqual(got, wantSorted) {
		t.Fatalf("Sorted() = %v, want %v", got, wantSorted)
	}
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(nil)

	if !sum.IsEmpty() {
		t.Fatal("expected empty summary")
	}
	if got := sum.Total(); got != 0 {
		t.Fatalf("Total() = %d, want 0", got)
	}
	if got := sum.Levels(); len(got) != 0 {
		t.Fatalf("Levels() = %v, want none", got)
	}
}

package store

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"workshop/internal/workshop"
)

// seedWorkshop creates <base>/<id>/<spoken>/<prog>/01-intro for each pair.
func seedWorkshop(t *testing.T, base, id string, pairs map[string][]string) {
	t.Helper()
	for spoken, progs := range pairs {
		for _, prog := range progs {
			dir := filepath.Join(base, id, spoken, prog, "01-intro")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", dir, err)
			}
		}
	}
	if len(pairs) == 0 {
		if err := os.MkdirAll(filepath.Join(base, id), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", id, err)
		}
	}
}

func TestLoadAllMergesLocalOverGlobal(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv(EnvDataDir, dataDir)
	seedWorkshop(t, dataDir, "shared", map[string][]string{"en": {"py"}})
	seedWorkshop(t, dataDir, "global-only", map[string][]string{"en": {"rs"}})

	start := t.TempDir()
	local := filepath.Join(start, WorkspaceDirName)
	seedWorkshop(t, local, "shared", map[string][]string{"fr": {"go"}})
	seedWorkshop(t, local, "local-only", map[string][]string{"de": {"rs"}})

	all, err := LoadAll(context.Background(), start)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 workshops, got %d: %v", len(all), all)
	}

	shared, ok := all["shared"]
	if !ok {
		t.Fatal("shared workshop missing")
	}
	if shared.Source != SourceLocal {
		t.Errorf("shared.Source = %s, local must override global", shared.Source)
	}
	if got := shared.SpokenLanguages(); !reflect.DeepEqual(got, []string{"fr"}) {
		t.Errorf("shared languages = %v, want the local entry's", got)
	}
	if all["global-only"].Source != SourceGlobal {
		t.Errorf("global-only.Source = %s", all["global-only"].Source)
	}
	if all["local-only"].Source != SourceLocal {
		t.Errorf("local-only.Source = %s", all["local-only"].Source)
	}
}

func TestLoadAllWithoutWorkspace(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv(EnvDataDir, dataDir)
	seedWorkshop(t, dataDir, "solo", map[string][]string{"en": {"py"}})

	all, err := LoadAll(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != 1 || all["solo"].Source != SourceGlobal {
		t.Fatalf("unexpected catalog: %v", all)
	}
}

func TestFilter(t *testing.T) {
	all := map[string]workshop.Workshop{
		"a": {ID: "a", Languages: map[string]map[string][]string{"en": {"py": {"01"}}}},
		"b": {ID: "b", Languages: map[string]map[string][]string{"en": {"rs": {"01"}}, "fr": {"rs": {"01"}}}},
	}

	filtered := Filter(all, "en", "rs")
	if len(filtered) != 1 {
		t.Fatalf("expected 1 match, got %v", filtered)
	}
	if _, ok := filtered["b"]; !ok {
		t.Fatal("expected workshop b to match")
	}

	if got := Filter(all, "", ""); len(got) != 2 {
		t.Fatalf("empty codes must match everything, got %v", got)
	}
}

func TestSpokenLanguagesAggregation(t *testing.T) {
	all := map[string]workshop.Workshop{
		"a": {Languages: map[string]map[string][]string{"en": {"py": nil}, "fr": {"py": nil}}},
		"b": {Languages: map[string]map[string][]string{"en": {"rs": nil}, "de": {"rs": nil}}},
	}

	want := []string{"de", "en", "fr"}
	if got := SpokenLanguages(all); !reflect.DeepEqual(got, want) {
		t.Fatalf("SpokenLanguages = %v, want %v", got, want)
	}
}

func TestProgrammingLanguagesAggregation(t *testing.T) {
	all := map[string]workshop.Workshop{
		"a": {Languages: map[string]map[string][]string{"en": {"py": nil, "rs": nil}}},
		"b": {Languages: map[string]map[string][]string{"fr": {"go": nil, "rs": nil}}},
	}

	want := []string{"go", "py", "rs"}
	if got := ProgrammingLanguages(all); !reflect.DeepEqual(got, want) {
		t.Fatalf("ProgrammingLanguages = %v, want %v", got, want)
	}
}

func TestLanguageMatrixAggregation(t *testing.T) {
	all := map[string]workshop.Workshop{
		"a": {Languages: map[string]map[string][]string{"en": {"rs": nil}}},
		"b": {Languages: map[string]map[string][]string{"en": {"py": nil, "rs": nil}, "fr": {"go": nil}}},
	}

	matrix := LanguageMatrix(all)
	if got := matrix["en"]; !reflect.DeepEqual(got, []string{"py", "rs"}) {
		t.Errorf("matrix[en] = %v", got)
	}
	if got := matrix["fr"]; !reflect.DeepEqual(got, []string{"go"}) {
		t.Errorf("matrix[fr] = %v", got)
	}
}

func TestSortDedup(t *testing.T) {
	got := sortDedup([]string{"en", "de", "en", "fr", "de"})
	if !reflect.DeepEqual(got, []string{"de", "en", "fr"}) {
		t.Fatalf("sortDedup = %v", got)
	}
	if sortDedup(nil) != nil {
		t.Fatal("empty input must stay nil")
	}
}

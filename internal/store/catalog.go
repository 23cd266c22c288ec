package store

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"workshop/internal/workshop"
)

// Source labels for catalog entries.
const (
	SourceGlobal = "global"
	SourceLocal  = "local"
)

// LoadAll builds the merged workshop catalog: every workshop in the
// application data store, then every workshop in the local workspace store
// found by upward search from start. Local entries override global entries
// of the same identifier (last merged wins).
func LoadAll(ctx context.Context, start string) (map[string]workshop.Workshop, error) {
	all, err := LoadGlobal(ctx)
	if err != nil {
		return nil, err
	}

	workspace, found, err := FindWorkspace(start)
	if err != nil {
		return nil, err
	}
	if found {
		local, err := loadStore(ctx, workspace, SourceLocal)
		if err != nil {
			return nil, err
		}
		for id, ws := range local {
			all[id] = ws
		}
	}

	return all, nil
}

// LoadGlobal enumerates the application data store alone.
func LoadGlobal(ctx context.Context) (map[string]workshop.Workshop, error) {
	dataDir, err := DataDir()
	if err != nil {
		return nil, err
	}
	return loadStore(ctx, dataDir, SourceGlobal)
}

// loadStore enumerates the immediate subdirectories of a store directory,
// loading each as a workshop entry tagged with the store's source label.
func loadStore(ctx context.Context, dir, source string) (map[string]workshop.Workshop, error) {
	logger := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read store %s: %w", dir, err)
	}

	workshops := map[string]workshop.Workshop{}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ws, err := workshop.Load(dir, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("load workshop %s: %w", entry.Name(), err)
		}
		ws.Source = source
		workshops[ws.ID] = ws
		logger.Debug().Str("workshop", ws.ID).Str("source", source).Msg("workshop loaded")
	}
	return workshops, nil
}

// Filter keeps the workshops supporting the given spoken and programming
// language, delegating the membership test to each entry. Empty codes act
// as wildcards.
func Filter(all map[string]workshop.Workshop, spoken, programming string) map[string]workshop.Workshop {
	filtered := map[string]workshop.Workshop{}
	for id, ws := range all {
		if ws.Supports(spoken, programming) {
			filtered[id] = ws
		}
	}
	return filtered
}

// SpokenLanguages aggregates the spoken-language codes across the catalog,
// sorted and deduplicated so the output is independent of map iteration
// order.
func SpokenLanguages(all map[string]workshop.Workshop) []string {
	var codes []string
	for _, ws := range all {
		codes = append(codes, ws.SpokenLanguages()...)
	}
	return sortDedup(codes)
}

// ProgrammingLanguages aggregates the programming-language codes across the
// catalog, sorted and deduplicated.
func ProgrammingLanguages(all map[string]workshop.Workshop) []string {
	var codes []string
	for _, ws := range all {
		codes = append(codes, ws.ProgrammingLanguages()...)
	}
	return sortDedup(codes)
}

// LanguageMatrix aggregates the spoken-to-programming mapping across the
// catalog. Each spoken code maps to its sorted, deduplicated programming
// codes.
func LanguageMatrix(all map[string]workshop.Workshop) map[string][]string {
	matrix := map[string][]string{}
	for _, ws := range all {
		for spoken, progs := range ws.Matrix() {
			matrix[spoken] = append(matrix[spoken], progs...)
		}
	}
	for spoken, progs := range matrix {
		matrix[spoken] = sortDedup(progs)
	}
	return matrix
}

// sortDedup stable-sorts and removes adjacent duplicates.
func sortDedup(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	sort.Strings(values)
	out := values[:1]
	for _, v := range values[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

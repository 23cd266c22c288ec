package workshop

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// MetadataFile is the optional per-workshop descriptor read from the root
// of a workshop directory.
const MetadataFile = "workshop.yaml"

// Workshop is one learning-content bundle: a directory whose name is the
// workshop identifier, holding one subdirectory per spoken language, each
// with one subdirectory per programming language, each with the lesson
// directories. Languages maps spoken code to programming code to the
// name-sorted lesson list.
type Workshop struct {
	ID          string                         `json:"id" yaml:"-"`
	Path        string                         `json:"-" yaml:"-"`
	Title       string                         `json:"title" yaml:"title"`
	Description string                         `json:"description,omitempty" yaml:"description"`
	Source      string                         `json:"source,omitempty" yaml:"-"`
	Languages   map[string]map[string][]string `json:"languages" yaml:"-"`
}

// Load reads the workshop named id out of the given store directory. The
// optional workshop.yaml supplies title and description; a missing file
// falls back to a humanized identifier, a malformed one is an error.
func Load(base, id string) (Workshop, error) {
	path := filepath.Join(base, id)
	info, err := os.Stat(path)
	if err != nil {
		return Workshop{}, fmt.Errorf("stat workshop %s: %w", id, err)
	}
	if !info.IsDir() {
		return Workshop{}, fmt.Errorf("workshop %s: %s is not a directory", id, path)
	}

	ws := Workshop{
		ID:        id,
		Path:      path,
		Title:     Humanize(id),
		Languages: map[string]map[string][]string{},
	}

	if err := readMetadata(filepath.Join(path, MetadataFile), &ws); err != nil {
		return Workshop{}, err
	}

	spokenDirs, err := subdirectories(path)
	if err != nil {
		return Workshop{}, fmt.Errorf("enumerate workshop %s: %w", id, err)
	}
	for _, spoken := range spokenDirs {
		progDirs, err := subdirectories(filepath.Join(path, spoken))
		if err != nil {
			return Workshop{}, fmt.Errorf("enumerate workshop %s/%s: %w", id, spoken, err)
		}
		langs := map[string][]string{}
		for _, prog := range progDirs {
			lessons, err := subdirectories(filepath.Join(path, spoken, prog))
			if err != nil {
				return Workshop{}, fmt.Errorf("enumerate workshop %s/%s/%s: %w", id, spoken, prog, err)
			}
			langs[prog] = lessons
		}
		if len(langs) > 0 {
			ws.Languages[spoken] = langs
		}
	}

	return ws, nil
}

// LoadWorkspace loads a single workshop out of an already-resolved local
// workspace store. False means the workshop is not materialized there.
func LoadWorkspace(workspaceDir, id string) (Workshop, bool) {
	info, err := os.Stat(filepath.Join(workspaceDir, id))
	if err != nil || !info.IsDir() {
		return Workshop{}, false
	}
	ws, err := Load(workspaceDir, id)
	if err != nil {
		return Workshop{}, false
	}
	return ws, true
}

func readMetadata(path string, ws *Workshop) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read workshop metadata: %w", err)
	}
	meta := struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	}{}
	if err := yaml.Unmarshal(contents, &meta); err != nil {
		return fmt.Errorf("unmarshal workshop metadata %s: %w", path, err)
	}
	if meta.Title != "" {
		ws.Title = meta.Title
	}
	ws.Description = meta.Description
	return nil
}

// subdirectories returns the name-sorted immediate subdirectories of dir,
// skipping files and dot-directories.
func subdirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Supports reports whether the workshop offers content for the given spoken
// and programming language. An empty code acts as a wildcard.
func (w Workshop) Supports(spoken, programming string) bool {
	if spoken == "" && programming == "" {
		return true
	}
	for sp, progs := range w.Languages {
		if spoken != "" && sp != spoken {
			continue
		}
		if programming == "" {
			return true
		}
		if _, ok := progs[programming]; ok {
			return true
		}
	}
	return false
}

// SpokenLanguages returns the sorted spoken-language codes the workshop
// carries content for.
func (w Workshop) SpokenLanguages() []string {
	codes := make([]string, 0, len(w.Languages))
	for code := range w.Languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ProgrammingLanguages returns the sorted, deduplicated programming-language
// codes across every spoken language.
func (w Workshop) ProgrammingLanguages() []string {
	seen := map[string]struct{}{}
	var codes []string
	for _, progs := range w.Languages {
		for code := range progs {
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// Matrix maps each spoken code to its sorted programming codes.
func (w Workshop) Matrix() map[string][]string {
	matrix := make(map[string][]string, len(w.Languages))
	for spoken, progs := range w.Languages {
		codes := make([]string, 0, len(progs))
		for code := range progs {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		matrix[spoken] = codes
	}
	return matrix
}

// Lessons returns the name-sorted lessons for one spoken and programming
// language pair, nil when the pair is not offered.
func (w Workshop) Lessons(spoken, programming string) []string {
	progs, ok := w.Languages[spoken]
	if !ok {
		return nil
	}
	return progs[programming]
}

// Humanize renders an identifier like "intro-to-libp2p" as a display title.
func Humanize(id string) string {
	replacer := strings.NewReplacer("-", " ", "_", " ")
	words := strings.Fields(replacer.Replace(id))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	if len(words) == 0 {
		return id
	}
	return strings.Join(words, " ")
}

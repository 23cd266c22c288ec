package workshop

// Display names for the spoken-language codes commonly seen in workshop
// trees. Unknown codes render as themselves.
var spokenNames = map[string]string{
	"de": "German",
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"pt": "Portuguese",
	"ru": "Russian",
	"zh": "Chinese",
}

// Display names for programming-language codes.
var programmingNames = map[string]string{
	"c":   "C",
	"cpp": "C++",
	"go":  "Go",
	"js":  "JavaScript",
	"py":  "Python",
	"rs":  "Rust",
	"ts":  "TypeScript",
	"zig": "Zig",
}

// SpokenName returns the display name for a spoken-language code.
func SpokenName(code string) string {
	if name, ok := spokenNames[code]; ok {
		return name
	}
	return code
}

// ProgrammingName returns the display name for a programming-language code.
func ProgrammingName(code string) string {
	if name, ok := programmingNames[code]; ok {
		return name
	}
	return code
}

package toolchain

// candidateTable keeps the probing order as data: a cross-platform default
// list followed by per-GOOS additions. Keeping the table separate from the
// probing loop lets every platform's set be compiled and exercised on any
// host, and new default paths slot in without touching control flow.
type candidateTable struct {
	common []string
	byOS   map[string][]string
}

func (t candidateTable) compile(goos string) []Candidate {
	candidates := make([]Candidate, 0, len(t.common)+len(t.byOS[goos]))
	for _, path := range t.common {
		candidates = append(candidates, Candidate{Path: path})
	}
	for _, path := range t.byOS[goos] {
		candidates = append(candidates, Candidate{Path: path, OS: goos})
	}
	return candidates
}

var pythonCandidates = candidateTable{
	common: []string{"python3", "python", "py"},
	byOS: map[string][]string{
		"windows": {
			`C:\Python39\python.exe`,
			`C:\Python38\python.exe`,
			`C:\Program Files\Python39\python.exe`,
			`C:\Program Files\Python38\python.exe`,
			`C:\Users\%USERNAME%\AppData\Local\Programs\Python\Python39\python.exe`,
			`C:\Users\%USERNAME%\AppData\Local\Programs\Python\Python38\python.exe`,
		},
		"darwin": {
			"/usr/local/bin/python3",
			"/opt/homebrew/bin/python3",
			"/usr/bin/python3",
			"/opt/local/bin/python3",
			"~/.pyenv/shims/python3",
		},
		"linux": {
			"/usr/bin/python3",
			"/usr/local/bin/python3",
			"/bin/python3",
			"~/.pyenv/shims/python3",
		},
	},
}

// dockerCandidates feeds the compose-plugin strategy: each entry is probed
// with "compose version".
var dockerCandidates = candidateTable{
	common: []string{"docker"},
	byOS: map[string][]string{
		"windows": {
			"docker.exe",
			`C:\Program Files\Docker\Docker\resources\bin\docker.exe`,
		},
		"darwin": {
			"/usr/local/bin/docker",
			"/opt/homebrew/bin/docker",
			"/Applications/Docker.app/Contents/Resources/bin/docker",
		},
		"linux": {
			"/usr/bin/docker",
			"/usr/local/bin/docker",
			"/snap/bin/docker",
		},
	},
}

var composeStandaloneCandidates = candidateTable{
	common: []string{"docker-compose"},
	byOS: map[string][]string{
		"windows": {
			"docker-compose.exe",
			`C:\Program Files\Docker\Docker\resources\bin\docker-compose.exe`,
			`C:\ProgramData\DockerDesktop\version-bin\docker-compose.exe`,
		},
		"darwin": {
			"/usr/local/bin/docker-compose",
			"/opt/homebrew/bin/docker-compose",
			"/Applications/Docker.app/Contents/Resources/bin/docker-compose",
		},
		"linux": {
			"/usr/bin/docker-compose",
			"/usr/local/bin/docker-compose",
			"/snap/bin/docker-compose",
		},
	},
}

var gitCandidates = candidateTable{
	common: []string{"git"},
	byOS: map[string][]string{
		"windows": {
			"git.exe",
			`C:\Program Files\Git\cmd\git.exe`,
			`C:\Program Files (x86)\Git\cmd\git.exe`,
		},
		"darwin": {
			"/usr/bin/git",
			"/usr/local/bin/git",
			"/opt/homebrew/bin/git",
		},
		"linux": {
			"/usr/bin/git",
			"/usr/local/bin/git",
		},
	},
}

package store

import (
	"path/filepath"
	"testing"
)

func TestDataDirOverride(t *testing.T) {
	override := t.TempDir()
	t.Setenv(EnvDataDir, override)
	// Platform envs must be ignored while the override is set.
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	got, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if got != override {
		t.Fatalf("DataDir = %s, want override %s", got, override)
	}
}

func TestDataDirForPlatforms(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", "/home/alice")

	tests := []struct {
		goos string
		want string
	}{
		{"linux", filepath.Join("/home/alice", ".local", "share", "workshop")},
		{"darwin", filepath.Join("/home/alice", "Library", "Application Support", "io.libp2p.workshop")},
		{"windows", filepath.Join("/home/alice", "AppData", "Roaming", "libp2p", "workshop", "data")},
	}
	for _, tt := range tests {
		got, err := dataDirFor(tt.goos)
		if err != nil {
			t.Fatalf("dataDirFor(%s): %v", tt.goos, err)
		}
		if got != tt.want {
			t.Errorf("dataDirFor(%s) = %s, want %s", tt.goos, got, tt.want)
		}
	}
}

func TestDataDirXDG(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	t.Setenv("HOME", "/home/alice")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	got, err := dataDirFor("linux")
	if err != nil {
		t.Fatalf("dataDirFor: %v", err)
	}
	if got != filepath.Join("/xdg/data", "workshop") {
		t.Fatalf("dataDirFor = %s", got)
	}
}

func TestDataDirWindowsAppData(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	t.Setenv("HOME", "/home/alice")
	t.Setenv("APPDATA", `C:\Users\alice\AppData\Roaming`)

	got, err := dataDirFor("windows")
	if err != nil {
		t.Fatalf("dataDirFor: %v", err)
	}
	want := filepath.Join(`C:\Users\alice\AppData\Roaming`, "libp2p", "workshop", "data")
	if got != want {
		t.Fatalf("dataDirFor = %s, want %s", got, want)
	}
}

func TestConfigDirForPlatforms(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", "/home/alice")

	tests := []struct {
		goos string
		want string
	}{
		{"linux", filepath.Join("/home/alice", ".config", "workshop")},
		{"darwin", filepath.Join("/home/alice", "Library", "Application Support", "io.libp2p.workshop")},
		{"windows", filepath.Join("/home/alice", "AppData", "Roaming", "libp2p", "workshop", "config")},
	}
	for _, tt := range tests {
		got, err := configDirFor(tt.goos)
		if err != nil {
			t.Fatalf("configDirFor(%s): %v", tt.goos, err)
		}
		if got != tt.want {
			t.Errorf("configDirFor(%s) = %s, want %s", tt.goos, got, tt.want)
		}
	}
}

func TestDataDirCreatesDirectory(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "nested", "store")
	t.Setenv(EnvDataDir, target)

	got, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if isDir, err := DirExists(got); err != nil || !isDir {
		t.Fatalf("resolved store not created: isDir=%v err=%v", isDir, err)
	}
}

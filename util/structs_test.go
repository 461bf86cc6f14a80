package util

import "testing"

func TestTotalFilesSkipsIndexEntries(t *testing.T) {
	manifest := InstanceManifest{
		Files: map[string][]FileEntry{
			"mods": {
				{Filename: "a.jar"},
				{Filename: ".index/modrinth.index.json"},
				{Filename: "b.jar"},
			},
			"config": {
				{Filename: ".index/state.json"},
				{Filename: "options.txt"},
			},
			"saves": {},
		},
	}

	if got := manifest.TotalFiles(); got != 3 {
		t.Fatalf("TotalFiles got %d want 3", got)
	}
}

func TestTotalFilesEmpty(t *testing.T) {
	if got := (InstanceManifest{}).TotalFiles(); got != 0 {
		t.Fatalf("TotalFiles got %d want 0", got)
	}
}

func TestIsIndex(t *testing.T) {
	if !(FileEntry{Filename: ".index/x"}).IsIndex() {
		t.Fatal(".index/x should be an index entry")
	}
	if (FileEntry{Filename: "mod.index/x"}).IsIndex() {
		t.Fatal("mod.index/x should not be an index entry")
	}
	if (FileEntry{Filename: "a.jar"}).IsIndex() {
		t.Fatal("a.jar should not be an index entry")
	}
}

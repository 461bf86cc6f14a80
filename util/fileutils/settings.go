package fileutils

import (
	"github.com/zalando/go-keyring"
)

const keyringService = "instancer"

// SaveDefaultLauncher remembers the launcher chosen during init so
// install does not need a flag every time.
func SaveDefaultLauncher(kind string) error {
	return keyring.Set(keyringService, "default_launcher", kind)
}

// DefaultLauncher returns the stored launcher choice, falling back to
// the vanilla launcher when nothing was saved yet.
func DefaultLauncher() string {
	kind, err := keyring.Get(keyringService, "default_launcher")
	if err != nil || kind == "" {
		return "vanilla"
	}
	return kind
}

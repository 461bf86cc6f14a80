package fileutils

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/buger/jsonparser"
	"github.com/mrnavastar/instancer/util"
	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"
)

// Exists reports whether anything sits at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadOrInitProfileStore loads launcher_profiles.json, creating a
// minimal pretty-printed store when none exists yet. The returned bytes
// are the raw store; merges must splice into them rather than
// re-marshalling so that unrelated profile entries keep their exact bytes.
func ReadOrInitProfileStore(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		store := util.LauncherProfiles{
			Profiles: map[string]util.Profile{},
			Settings: map[string]interface{}{},
			Version:  3,
		}
		fresh, merr := json.MarshalIndent(store, "", "  ")
		if merr != nil {
			return nil, eris.Wrap(merr, "failed to encode fresh profile store")
		}
		if werr := os.MkdirAll(filepath.Dir(path), 0755); werr != nil {
			return nil, eris.Wrap(werr, "failed to create launcher directory")
		}
		if werr := os.WriteFile(path, fresh, 0644); werr != nil {
			return nil, eris.Wrap(werr, "failed to initialise profile store")
		}
		return fresh, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "failed to read profile store")
	}
	if !gjson.ValidBytes(data) {
		return nil, eris.Errorf("profile store at %s is not valid JSON", path)
	}
	if !gjson.GetBytes(data, "profiles").Exists() {
		data, err = jsonparser.Set(data, []byte("{}"), "profiles")
		if err != nil {
			return nil, eris.Wrap(err, "failed to add profiles map to store")
		}
	}
	return data, nil
}

// UpsertProfile splices one profile into the store under key, leaving
// every other byte of the file untouched.
func UpsertProfile(path string, key string, profile util.Profile) error {
	store, err := ReadOrInitProfileStore(path)
	if err != nil {
		return err
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return eris.Wrap(err, "failed to encode profile")
	}

	merged, err := jsonparser.Set(store, data, "profiles", key)
	if err != nil {
		return eris.Wrap(err, "failed to merge profile into store")
	}

	if err := os.WriteFile(path, merged, 0644); err != nil {
		return eris.Wrap(err, "failed to write profile store")
	}
	return nil
}

// RemoveProfile deletes one profile entry, leaving the rest of the
// store untouched. A missing store is not an error.
func RemoveProfile(path string, key string) error {
	store, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return eris.Wrap(err, "failed to read profile store")
	}

	trimmed := jsonparser.Delete(store, "profiles", key)
	if err := os.WriteFile(path, trimmed, 0644); err != nil {
		return eris.Wrap(err, "failed to write profile store")
	}
	return nil
}

// WriteJSON writes v pretty-printed to path.
func WriteJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrapf(err, "failed to encode %s", filepath.Base(path))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return eris.Wrapf(err, "failed to write %s", filepath.Base(path))
	}
	return nil
}

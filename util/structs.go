package util

import "strings"

// Loader types understood by the installer.
const (
	LoaderVanilla = "vanilla"
	LoaderFabric  = "fabric"
)

// IndexPrefix marks manifest entries that exist only for external
// bookkeeping. They are never downloaded and never counted.
const IndexPrefix = ".index/"

// Categories is the fixed order file groups are processed in.
var Categories = []string{
	"mods", "resourcepacks", "shaderpacks", "saves", "config",
	"screenshots", "logs", "crash-reports", "versions", "assets", "libraries",
}

type Loader struct {
	Type    string `json:"type"`
	Version string `json:"version"`
}

type Java struct {
	MinimumVersion    int    `json:"minimum_version"`
	RecommendedMemory string `json:"recommended_memory"`
}

type DownloadURLs struct {
	ClientJar string `json:"client_jar"`
	Assets    string `json:"assets"`
}

type FileEntry struct {
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
	Hash        string `json:"hash"`
	Size        int64  `json:"size"`
}

// IsIndex reports whether the entry is a bookkeeping marker rather than
// a downloadable file.
func (f FileEntry) IsIndex() bool {
	return strings.HasPrefix(f.Filename, IndexPrefix)
}

type InstanceManifest struct {
	Name             string                 `json:"name"`
	Description      string                 `json:"description"`
	MinecraftVersion string                 `json:"minecraft_version"`
	Loader           Loader                 `json:"loader"`
	Java             Java                   `json:"java"`
	DownloadURLs     DownloadURLs           `json:"download_urls"`
	Files            map[string][]FileEntry `json:"files"`
}

// TotalFiles counts every downloadable entry across all categories.
// Index entries never contribute, so this is the denominator every
// progress percentage is computed against.
func (m InstanceManifest) TotalFiles() int {
	total := 0
	for _, files := range m.Files {
		for _, f := range files {
			if !f.IsIndex() {
				total++
			}
		}
	}
	return total
}

// InstallTarget holds every directory one install attempt touches. It is
// recomputed from the environment on each attempt, never cached.
type InstallTarget struct {
	BasePath         string
	LauncherRootPath string
	InstancePath     string
	GameDataPath     string
}

// Profile is one entry in the vanilla launcher's profile store.
type Profile struct {
	Created       string `json:"created"`
	Icon          string `json:"icon"`
	LastUsed      string `json:"lastUsed"`
	LastVersionId string `json:"lastVersionId"`
	Name          string `json:"name"`
	GameDir       string `json:"gameDir"`
	Type          string `json:"type"`
}

// LauncherProfiles mirrors launcher_profiles.json. Only the profiles map
// is ever written to; settings belong to the launcher.
type LauncherProfiles struct {
	Profiles map[string]Profile     `json:"profiles"`
	Settings map[string]interface{} `json:"settings"`
	Version  int                    `json:"version"`
}

type Library struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type Arguments struct {
	Game []string `json:"game"`
	JVM  []string `json:"jvm"`
}

// VersionManifest is the version metadata file the vanilla launcher
// reads from versions/<id>/<id>.json.
type VersionManifest struct {
	ID           string    `json:"id"`
	InheritsFrom string    `json:"inheritsFrom"`
	Type         string    `json:"type"`
	MainClass    string    `json:"mainClass"`
	Arguments    Arguments `json:"arguments"`
	Libraries    []Library `json:"libraries"`
}

type ComponentRef struct {
	UID    string `json:"uid"`
	Equals string `json:"equals,omitempty"`
}

type PrismComponent struct {
	UID      string         `json:"uid"`
	Version  string         `json:"version"`
	Requires []ComponentRef `json:"requires,omitempty"`
}

// PrismPack mirrors mmc-pack.json, the component stack Prism-style
// launchers resolve an instance from.
type PrismPack struct {
	FormatVersion int              `json:"formatVersion"`
	Components    []PrismComponent `json:"components"`
}

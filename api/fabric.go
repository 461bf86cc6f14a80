package api

import (
	"fmt"

	"github.com/rotisserie/eris"
	"golang.org/x/mod/semver"
)

const fabricMeta = "https://meta.fabricmc.net/v2"

type LoaderVersion struct {
	Version string
	Stable  bool
}

type FabricLibrary struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type mavenRef struct {
	Maven   string `json:"maven"`
	Version string `json:"version"`
}

// FabricProfile is the slice of the fabric meta response the version
// manifest generator consumes.
type FabricProfile struct {
	Intermediary mavenRef `json:"intermediary"`
	Loader       mavenRef `json:"loader"`
	LauncherMeta struct {
		Libraries struct {
			Common []FabricLibrary `json:"common"`
		} `json:"libraries"`
	} `json:"launcherMeta"`
}

// MetaService is the mod-loader metadata collaborator the config
// adapters query when an instance uses fabric.
type MetaService interface {
	LoaderProfile(mcVersion string, loaderVersion string) (FabricProfile, error)
	LatestLoaderVersion() (string, error)
}

// FabricMeta talks to the real fabric metadata service.
type FabricMeta struct{}

func (FabricMeta) LoaderProfile(mcVersion string, loaderVersion string) (FabricProfile, error) {
	var profile FabricProfile
	url := fmt.Sprintf("%s/versions/loader/%s/%s/profile/json", fabricMeta, mcVersion, loaderVersion)
	resp, err := client.R().SetResult(&profile).Get(url)
	if err != nil {
		return FabricProfile{}, eris.Wrap(err, "failed to reach fabric meta")
	}
	if resp.IsError() {
		return FabricProfile{}, eris.Errorf("fabric meta returned %s for loader %s on %s", resp.Status(), loaderVersion, mcVersion)
	}
	return profile, nil
}

// LatestLoaderVersion returns the newest stable fabric loader, used
// when a manifest names fabric but pins no loader version.
func (FabricMeta) LatestLoaderVersion() (string, error) {
	var loaderVersions []LoaderVersion
	resp, err := client.R().SetResult(&loaderVersions).Get(fabricMeta + "/versions/loader")
	if err != nil {
		return "", eris.Wrap(err, "failed to reach fabric meta")
	}
	if resp.IsError() {
		return "", eris.Errorf("fabric meta returned %s", resp.Status())
	}

	best := ""
	for _, lv := range loaderVersions {
		if lv.Stable && (best == "" || semver.Compare("v"+lv.Version, "v"+best) > 0) {
			best = lv.Version
		}
	}
	if best == "" {
		return "", eris.New("failed to find a stable loader version")
	}
	return best, nil
}

package services

import (
	"os"
	"path/filepath"
	"time"

	"github.com/mrnavastar/instancer/util"
	"github.com/mrnavastar/instancer/util/fileutils"
	"github.com/rotisserie/eris"
)

const (
	profileIcon    = "data:image/png;base64," + iconPNG
	fabricMaven    = "https://maven.fabricmc.net/"
	vanillaMain    = "net.minecraft.client.main.Main"
	fabricKnotMain = "net.fabricmc.loader.impl.launch.knot.KnotClient"
)

// writeVanillaConfig merges one profile into the launcher's profile
// store and lays down version metadata for the instance. Both steps are
// fatal on failure; a half-written launcher config is never success.
func (in *Installer) writeVanillaConfig(manifest util.InstanceManifest, target util.InstallTarget) error {
	if err := in.upsertProfile(manifest, target); err != nil {
		return err
	}
	return in.writeVersionManifest(manifest, target)
}

// upsertProfile is a read-merge-write: the profile keyed by the
// instance slug is replaced, every unrelated entry keeps its exact
// bytes. Installing the same instance twice only ever overwrites its
// own entry.
func (in *Installer) upsertProfile(manifest util.InstanceManifest, target util.InstallTarget) error {
	storePath := filepath.Join(target.LauncherRootPath, "launcher_profiles.json")
	slug := util.Slug(manifest.Name)

	now := in.Now().Format(time.RFC3339)
	profile := util.Profile{
		Created:       now,
		Icon:          profileIcon,
		LastUsed:      now,
		LastVersionId: slug,
		Name:          manifest.Name,
		GameDir:       target.GameDataPath,
		Type:          "custom",
	}

	return fileutils.UpsertProfile(storePath, slug, profile)
}

// writeVersionManifest generates versions/<slug>/<slug>.json. First
// install wins: an existing version directory is left untouched.
func (in *Installer) writeVersionManifest(manifest util.InstanceManifest, target util.InstallTarget) error {
	id := util.Slug(manifest.Name)
	dir := filepath.Join(target.LauncherRootPath, "versions", id)
	if fileutils.Exists(dir) {
		return nil
	}

	vm := util.VersionManifest{
		ID:           id,
		InheritsFrom: manifest.MinecraftVersion,
		Type:         "custom",
		MainClass:    vanillaMain,
		Arguments:    util.Arguments{Game: []string{}, JVM: jvmArguments(manifest)},
	}

	if manifest.Loader.Type == util.LoaderFabric {
		loaderVersion, err := in.loaderVersion(manifest)
		if err != nil {
			return err
		}
		profile, err := in.Meta.LoaderProfile(manifest.MinecraftVersion, loaderVersion)
		if err != nil {
			return eris.Wrap(err, "failed to fetch fabric loader metadata")
		}

		vm.MainClass = fabricKnotMain
		vm.Libraries = append(vm.Libraries,
			util.Library{Name: profile.Loader.Maven, URL: fabricMaven},
			util.Library{Name: profile.Intermediary.Maven, URL: fabricMaven},
		)
		for _, lib := range profile.LauncherMeta.Libraries.Common {
			vm.Libraries = append(vm.Libraries, util.Library{Name: lib.Name, URL: lib.URL})
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return eris.Wrap(err, "failed to create version directory")
	}
	return fileutils.WriteJSON(filepath.Join(dir, id+".json"), vm)
}

// loaderVersion returns the manifest's pinned loader, or asks the meta
// service for the newest stable one when nothing is pinned.
func (in *Installer) loaderVersion(manifest util.InstanceManifest) (string, error) {
	if manifest.Loader.Version != "" {
		return manifest.Loader.Version, nil
	}
	return in.Meta.LatestLoaderVersion()
}

func jvmArguments(manifest util.InstanceManifest) []string {
	if manifest.Java.RecommendedMemory == "" {
		return []string{}
	}
	return []string{"-Xmx" + manifest.Java.RecommendedMemory}
}

package services

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/mrnavastar/instancer/util"
	"github.com/mrnavastar/instancer/util/fileutils"
	"github.com/rotisserie/eris"
)

const prismIconKey = "instancer"

// iconPNG is the bundled instance icon, a PNG shared by every install.
const iconPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// writePrismConfig lays down the instance.cfg / mmc-pack.json pair that
// Prism-style launchers read from an instance directory, plus the
// shared instance icon.
func (in *Installer) writePrismConfig(manifest util.InstanceManifest, target util.InstallTarget) error {
	cfg := map[string]interface{}{
		"InstanceType": "OneSix",
		"name":         manifest.Name,
		"iconKey":      prismIconKey,
		"notes":        manifest.Description,
		"JavaVersion":  manifest.Java.MinimumVersion,
		"ManagedPack":  map[string]string{"name": manifest.Name, "version": manifest.MinecraftVersion},
	}
	if err := writeKeyValueFile(filepath.Join(target.InstancePath, "instance.cfg"), cfg); err != nil {
		return err
	}

	pack, err := in.componentStack(manifest)
	if err != nil {
		return err
	}
	if err := fileutils.WriteJSON(filepath.Join(target.InstancePath, "mmc-pack.json"), pack); err != nil {
		return err
	}

	return copyPrismIcon(target)
}

// componentStack builds mmc-pack.json: the base game plus, for modded
// instances, a loader component requiring the java runtime the manifest
// asks for.
func (in *Installer) componentStack(manifest util.InstanceManifest) (util.PrismPack, error) {
	pack := util.PrismPack{
		FormatVersion: 1,
		Components: []util.PrismComponent{
			{UID: "net.minecraft", Version: manifest.MinecraftVersion},
		},
	}

	if manifest.Loader.Type != util.LoaderVanilla {
		loaderVersion, err := in.loaderVersion(manifest)
		if err != nil {
			return util.PrismPack{}, err
		}
		pack.Components = append(pack.Components, util.PrismComponent{
			UID:     "net.fabricmc.fabric-loader",
			Version: loaderVersion,
			Requires: []util.ComponentRef{
				{UID: "net.minecraft.java", Equals: strconv.Itoa(manifest.Java.MinimumVersion)},
			},
		})
	}
	return pack, nil
}

// writeKeyValueFile renders one KEY=VALUE line per top-level key, in
// sorted order so rewrites are stable. Non-string values are JSON
// stringified inline.
func writeKeyValueFile(path string, cfg map[string]interface{}) error {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		switch v := cfg[k].(type) {
		case string:
			b.WriteString(k + "=" + v + "\n")
		default:
			data, err := json.Marshal(v)
			if err != nil {
				return eris.Wrapf(err, "failed to encode config key %s", k)
			}
			b.WriteString(k + "=" + string(data) + "\n")
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return eris.Wrapf(err, "failed to write %s", filepath.Base(path))
	}
	return nil
}

// copyPrismIcon drops the bundled icon into the launcher's shared icon
// directory. It only ever happens once; an existing icon is kept.
func copyPrismIcon(target util.InstallTarget) error {
	iconPath := filepath.Join(target.LauncherRootPath, "icons", prismIconKey+".png")
	if fileutils.Exists(iconPath) {
		return nil
	}

	raw, err := base64.StdEncoding.DecodeString(iconPNG)
	if err != nil {
		return eris.Wrap(err, "failed to decode bundled icon")
	}
	if err := os.MkdirAll(filepath.Dir(iconPath), 0755); err != nil {
		return eris.Wrap(err, "failed to create icon directory")
	}
	if err := os.WriteFile(iconPath, raw, 0644); err != nil {
		return eris.Wrap(err, "failed to write icon")
	}
	return nil
}

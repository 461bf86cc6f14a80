package api

type versions struct {
	Latest struct {
		Release string
	}
}

// GetLatestMcVersion returns the newest Minecraft release, or an empty
// string when Mojang's version manifest is unreachable.
func GetLatestMcVersion() string {
	var versions versions
	resp, err := client.R().SetResult(&versions).Get("https://launchermeta.mojang.com/mc/game/version_manifest_v2.json")
	if err != nil || resp.IsError() {
		return ""
	}
	return versions.Latest.Release
}

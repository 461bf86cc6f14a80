package api

import (
	"strings"

	"github.com/mrnavastar/instancer/util"
	"github.com/rotisserie/eris"
)

type instanceList struct {
	Status    string                  `json:"status"`
	Instances []util.InstanceManifest `json:"instances"`
}

// GetInstances fetches the remote instance catalogue. Nothing is cached
// to disk; every session sees a fresh list.
func GetInstances() ([]util.InstanceManifest, error) {
	var list instanceList
	resp, err := client.R().SetResult(&list).Get(Base() + "/api/instances")
	if err != nil {
		return nil, eris.Wrap(err, "failed to fetch instance list")
	}
	if resp.IsError() {
		return nil, eris.Errorf("instance list request returned %s", resp.Status())
	}
	return list.Instances, nil
}

// GetInstance looks one instance up by name, case-insensitively.
func GetInstance(name string) (util.InstanceManifest, error) {
	instances, err := GetInstances()
	if err != nil {
		return util.InstanceManifest{}, err
	}

	for _, instance := range instances {
		if strings.EqualFold(instance.Name, name) {
			return instance, nil
		}
	}
	return util.InstanceManifest{}, eris.Errorf("failed to find instance %q", name)
}

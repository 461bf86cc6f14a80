package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mrnavastar/instancer/api"
	"github.com/mrnavastar/instancer/util"
	"github.com/mrnavastar/instancer/util/fileutils"
	"github.com/mrnavastar/instancer/util/paths"
	"github.com/rotisserie/eris"
)

// ErrInstallInProgress is returned when a second install for the same
// instance starts before the first finished.
var ErrInstallInProgress = eris.New("an install for this instance is already running")

// InstallResult reports the outcome of one install attempt.
type InstallResult struct {
	// Created is true once the instance was fully prepared. Individual
	// file failures do not clear it.
	Created bool
	// NeedsConfirmation is true when the instance path already exists
	// and force was false. Nothing was written; re-invoke with force.
	NeedsConfirmation bool
	Path              string
	FailedFiles       []string
}

// Installer wires the install pipeline's collaborators together. The
// zero value is not usable; start from NewInstaller and override fields
// as needed.
type Installer struct {
	Env     paths.Environment
	Fetch   Fetcher
	FileURL func(downloadURL string) string
	Meta    api.MetaService
	Sink    EventSink
	Policy  RetryPolicy
	Sleep   func(time.Duration)
	Now     func() time.Time
}

func NewInstaller() *Installer {
	return &Installer{
		Env:     paths.Detect(),
		Fetch:   api.DownloadFile,
		FileURL: api.ResolveURL,
		Meta:    api.FabricMeta{},
		Sink:    ConsoleSink{},
		Policy:  DefaultRetryPolicy,
		Sleep:   time.Sleep,
		Now:     time.Now,
	}
}

// Installs of the same instance race on the same directory and profile
// store, so each slug holds an exclusive in-process lock.
var installLocks sync.Map

func lockInstance(slug string) (func(), error) {
	m, _ := installLocks.LoadOrStore(slug, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	if !mu.TryLock() {
		return nil, eris.Wrapf(ErrInstallInProgress, "%s", slug)
	}
	return mu.Unlock, nil
}

// Install runs the full pipeline for one manifest: resolve paths, check
// for conflicts, write launcher config, download the file set. Fatal
// failures are published on the sink and returned; per-file download
// failures are aggregated into the result instead.
func (in *Installer) Install(manifest util.InstanceManifest, launcher paths.Launcher, force bool) (InstallResult, error) {
	unlock, err := lockInstance(util.Slug(manifest.Name))
	if err != nil {
		in.Sink.Error(ErrorEvent{Err: err})
		return InstallResult{}, err
	}
	defer unlock()

	target, err := paths.Resolve(in.Env, launcher, manifest.Name)
	if err != nil {
		in.Sink.Error(ErrorEvent{Err: err})
		return InstallResult{}, err
	}

	// An existing install is never touched without explicit consent.
	if fileutils.Exists(target.InstancePath) {
		if !force {
			return InstallResult{NeedsConfirmation: true, Path: target.InstancePath}, nil
		}
		if rerr := os.RemoveAll(target.InstancePath); rerr != nil {
			werr := eris.Wrap(rerr, "failed to clear existing instance")
			in.Sink.Error(ErrorEvent{Err: werr})
			return InstallResult{}, werr
		}
	}

	if err := in.prepareDirectories(target); err != nil {
		in.Sink.Error(ErrorEvent{Err: err})
		return InstallResult{}, err
	}

	if err := in.writeLauncherConfig(manifest, launcher, target); err != nil {
		werr := eris.Wrap(err, "failed to write launcher configuration")
		in.Sink.Error(ErrorEvent{Err: werr})
		return InstallResult{}, werr
	}

	failed := in.downloadAll(manifest, target)
	in.reportFailures(failed)

	in.Sink.Complete(CompleteEvent{InstanceName: manifest.Name, Path: target.InstancePath})
	return InstallResult{Created: true, Path: target.InstancePath, FailedFiles: failed}, nil
}

func (in *Installer) prepareDirectories(target util.InstallTarget) error {
	if err := os.MkdirAll(target.InstancePath, 0755); err != nil {
		return eris.Wrap(err, "failed to create instance directory")
	}
	if err := os.MkdirAll(target.GameDataPath, 0755); err != nil {
		return eris.Wrap(err, "failed to create game data directory")
	}
	return nil
}

func (in *Installer) writeLauncherConfig(manifest util.InstanceManifest, launcher paths.Launcher, target util.InstallTarget) error {
	switch launcher {
	case paths.LauncherVanilla:
		return in.writeVanillaConfig(manifest, target)
	case paths.LauncherPrism:
		return in.writePrismConfig(manifest, target)
	}
	return eris.Wrapf(paths.ErrUnknownLauncher, "%q", launcher)
}

// downloadAll walks the categories in their fixed order. A category's
// failures never stop the ones after it; the whole file set is
// best-effort.
func (in *Installer) downloadAll(manifest util.InstanceManifest, target util.InstallTarget) []string {
	total := manifest.TotalFiles()
	d := &Downloader{
		Fetch:   in.Fetch,
		FileURL: in.FileURL,
		Policy:  in.Policy,
		Sink:    in.Sink,
		Sleep:   in.Sleep,
	}

	var failed []string
	processed := 0
	for _, category := range util.Categories {
		files := manifest.Files[category]
		if len(files) == 0 {
			continue
		}

		dir := filepath.Join(target.GameDataPath, category)
		// A failed mkdir here surfaces as per-file failures below.
		_ = os.MkdirAll(dir, 0755)

		failed = append(failed, d.DownloadBatch(files, dir, processed, total)...)
		for _, f := range files {
			if !f.IsIndex() {
				processed++
			}
		}
	}

	// Vanilla instances also need the client binary itself. It is not a
	// manifest entry, so it stays out of the progress numbers.
	if manifest.Loader.Type == util.LoaderVanilla && manifest.DownloadURLs.ClientJar != "" {
		dest := filepath.Join(target.GameDataPath, "client.jar")
		url := in.FileURL(manifest.DownloadURLs.ClientJar)
		err := retry(in.Policy, in.Sleep, func() error {
			if ferr := in.Fetch(url, dest); ferr != nil {
				return ferr
			}
			return verifyDownload(dest)
		})
		if err != nil {
			failed = append(failed, "client.jar")
		}
	}
	return failed
}

func (in *Installer) reportFailures(failed []string) {
	switch len(failed) {
	case 0:
	case 1:
		in.Sink.Warning(WarningEvent{Message: "Failed to download " + failed[0], Files: failed})
	default:
		msg := fmt.Sprintf("Failed to download %d files: %s", len(failed), strings.Join(failed, ", "))
		in.Sink.Warning(WarningEvent{Message: msg, Files: failed})
	}
}

// Uninstall removes an installed instance and, for the vanilla
// launcher, its profile entry and version metadata.
func (in *Installer) Uninstall(instanceName string, launcher paths.Launcher) error {
	target, err := paths.Resolve(in.Env, launcher, instanceName)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(target.InstancePath); err != nil {
		return eris.Wrap(err, "failed to remove instance directory")
	}

	if launcher == paths.LauncherVanilla {
		slug := util.Slug(instanceName)
		storePath := filepath.Join(target.LauncherRootPath, "launcher_profiles.json")
		if err := fileutils.RemoveProfile(storePath, slug); err != nil {
			return err
		}
		if err := os.RemoveAll(filepath.Join(target.LauncherRootPath, "versions", slug)); err != nil {
			return eris.Wrap(err, "failed to remove version metadata")
		}
	}
	return nil
}

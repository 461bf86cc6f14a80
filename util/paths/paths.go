// Package paths resolves launcher directories from an explicitly
// injected environment. Resolution is pure string composition, so the
// whole OS/launcher matrix is testable without touching the filesystem.
package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mrnavastar/instancer/util"
	"github.com/rotisserie/eris"
)

// OS is the closed set of supported operating systems. Anything outside
// the set is a configuration error, never a fallback.
type OS string

const (
	Windows OS = "windows"
	MacOS   OS = "macos"
	Linux   OS = "linux"
)

// Launcher selects which config adapter an install targets.
type Launcher string

const (
	LauncherVanilla Launcher = "vanilla"
	LauncherPrism   Launcher = "prism"
)

var (
	ErrUnsupportedOS   = eris.New("unsupported operating system")
	ErrUnknownLauncher = eris.New("unknown launcher")
)

// Environment carries everything path resolution needs. Capture it
// fresh for every install attempt; HOME and APPDATA may change between
// attempts and must never be cached.
type Environment struct {
	OS      OS
	Home    string
	AppData string
}

// Detect reads the current process environment.
func Detect() Environment {
	env := Environment{AppData: os.Getenv("APPDATA")}
	env.Home, _ = os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		env.OS = Windows
	case "darwin":
		env.OS = MacOS
	default:
		env.OS = OS(runtime.GOOS)
	}
	return env
}

type composer struct {
	base      func(Environment) string
	gameData  func(base string) string
	prismRoot func(base string) string
}

var composers = map[OS]composer{
	Windows: {
		base:      func(e Environment) string { return e.AppData },
		gameData:  func(b string) string { return filepath.Join(b, ".minecraft") },
		prismRoot: func(b string) string { return filepath.Join(b, "PrismLauncher") },
	},
	MacOS: {
		base:      func(e Environment) string { return filepath.Join(e.Home, "Library", "Application Support") },
		gameData:  func(b string) string { return filepath.Join(b, "minecraft") },
		prismRoot: func(b string) string { return filepath.Join(b, "PrismLauncher") },
	},
	Linux: {
		base:      func(e Environment) string { return e.Home },
		gameData:  func(b string) string { return filepath.Join(b, ".minecraft") },
		prismRoot: func(b string) string { return filepath.Join(b, ".local", "share", "PrismLauncher") },
	},
}

// BasePath returns the per-OS root every other path hangs off.
func BasePath(env Environment) (string, error) {
	c, ok := composers[env.OS]
	if !ok {
		return "", eris.Wrapf(ErrUnsupportedOS, "%q", env.OS)
	}
	base := c.base(env)
	if base == "" {
		return "", eris.Errorf("no base directory available for %s", env.OS)
	}
	return base, nil
}

// GameDataRoot returns the vanilla launcher's data directory under base.
func GameDataRoot(env Environment, base string) (string, error) {
	c, ok := composers[env.OS]
	if !ok {
		return "", eris.Wrapf(ErrUnsupportedOS, "%q", env.OS)
	}
	return c.gameData(base), nil
}

// PrismRoot returns the Prism-style launcher's root under base.
func PrismRoot(env Environment, base string) (string, error) {
	c, ok := composers[env.OS]
	if !ok {
		return "", eris.Wrapf(ErrUnsupportedOS, "%q", env.OS)
	}
	return c.prismRoot(base), nil
}

// Resolve computes every directory one install attempt touches.
func Resolve(env Environment, launcher Launcher, instanceName string) (util.InstallTarget, error) {
	base, err := BasePath(env)
	if err != nil {
		return util.InstallTarget{}, err
	}

	target := util.InstallTarget{BasePath: base}
	switch launcher {
	case LauncherVanilla:
		root, err := GameDataRoot(env, base)
		if err != nil {
			return util.InstallTarget{}, err
		}
		target.LauncherRootPath = root
		target.InstancePath = filepath.Join(root, "instances", util.Slug(instanceName))
	case LauncherPrism:
		root, err := PrismRoot(env, base)
		if err != nil {
			return util.InstallTarget{}, err
		}
		target.LauncherRootPath = root
		target.InstancePath = filepath.Join(root, "instances", instanceName)
	default:
		return util.InstallTarget{}, eris.Wrapf(ErrUnknownLauncher, "%q", launcher)
	}

	target.GameDataPath = filepath.Join(target.InstancePath, ".minecraft")
	return target, nil
}

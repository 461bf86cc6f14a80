package services

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mrnavastar/instancer/util/paths"
	"github.com/pterm/pterm"
	"github.com/rotisserie/eris"
)

// LaunchPrism starts the Prism-style launcher pointing at the named
// instance. When no launcher is installed this reports it and does
// nothing else.
func LaunchPrism(env paths.Environment, instanceName string) error {
	bin, err := prismExecutable(env)
	if err != nil {
		return err
	}
	if bin == "" {
		pterm.Warning.Println("Prism Launcher is not installed")
		return nil
	}

	// Prism only honours --launch on a fresh start, so on macOS a
	// running launcher has to go first.
	if env.OS == paths.MacOS {
		_ = exec.Command("pkill", "-x", "prismlauncher").Run()
	}

	if err := exec.Command(bin, "--launch", instanceName).Start(); err != nil {
		return eris.Wrapf(err, "failed to start %s", bin)
	}
	return nil
}

// prismExecutable locates the launcher binary by each OS's install
// convention. An empty path means it is not installed.
func prismExecutable(env paths.Environment) (string, error) {
	switch env.OS {
	case paths.Windows:
		candidates := []string{
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Programs", "PrismLauncher", "prismlauncher.exe"),
			filepath.Join(env.AppData, "PrismLauncher", "prismlauncher.exe"),
		}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		return "", nil
	case paths.MacOS:
		app := "/Applications/Prism Launcher.app/Contents/MacOS/prismlauncher"
		if _, err := os.Stat(app); err == nil {
			return app, nil
		}
		return "", nil
	case paths.Linux:
		if bin, err := exec.LookPath("prismlauncher"); err == nil {
			return bin, nil
		}
		if bin, err := exec.LookPath("org.prismlauncher.PrismLauncher"); err == nil {
			return bin, nil
		}
		return "", nil
	}
	return "", eris.Wrapf(paths.ErrUnsupportedOS, "%q", env.OS)
}

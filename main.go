package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/text"
	"github.com/mrnavastar/instancer/api"
	"github.com/mrnavastar/instancer/services"
	"github.com/mrnavastar/instancer/util"
	"github.com/mrnavastar/instancer/util/fileutils"
	"github.com/mrnavastar/instancer/util/paths"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "instancer",
		Usage: "Install remote game instances onto your launcher",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Choose the launcher installs should target",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "launcher", Value: "vanilla", Usage: "vanilla or prism"},
				},
				Action: func(c *cli.Context) error {
					kind := c.String("launcher")
					if !util.Contains([]string{string(paths.LauncherVanilla), string(paths.LauncherPrism)}, kind) {
						return fmt.Errorf("unknown launcher %q", kind)
					}
					if err := fileutils.SaveDefaultLauncher(kind); err != nil {
						return err
					}
					fmt.Println("Done.")
					return nil
				},
			},
			{
				Name:    "ls",
				Aliases: []string{"list"},
				Usage:   "List installable instances",
				Action: func(c *cli.Context) error {
					instances, err := api.GetInstances()
					if err != nil {
						return err
					}

					lname := 0
					lversion := 0
					for _, instance := range instances {
						if len(instance.Name) > lname {
							lname = len(instance.Name)
						}
						if len(instance.MinecraftVersion) > lversion {
							lversion = len(instance.MinecraftVersion)
						}
					}

					fmt.Println()
					fmt.Println(text.AlignDefault.Apply("NAME:", lname+2) + text.AlignDefault.Apply("VERSION:", lversion+2) + "DESCRIPTION:")
					for _, instance := range instances {
						fmt.Println(text.AlignDefault.Apply(text.Bold.Sprint(instance.Name), lname+2) + text.AlignDefault.Apply(instance.MinecraftVersion, lversion+2) + instance.Description)
					}
					fmt.Println()

					if latest := api.GetLatestMcVersion(); latest != "" {
						fmt.Println("Latest Minecraft release: " + latest)
					}
					return nil
				},
			},
			{
				Name:  "install",
				Usage: "Install an instance",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "launcher", Value: fileutils.DefaultLauncher(), Usage: "vanilla or prism"},
					&cli.BoolFlag{Name: "force", Usage: "replace an existing install without asking"},
				},
				Action: func(c *cli.Context) error {
					manifest, err := api.GetInstance(c.Args().Get(0))
					if err != nil {
						return err
					}

					launcher := paths.Launcher(c.String("launcher"))
					installer := services.NewInstaller()

					result, err := installer.Install(manifest, launcher, c.Bool("force"))
					if err != nil {
						return err
					}

					if result.NeedsConfirmation {
						if !confirm(manifest.Name + " is already installed. Reinstall?") {
							fmt.Println("Aborted.")
							return nil
						}
						if _, err := installer.Install(manifest, launcher, true); err != nil {
							return err
						}
					}
					return nil
				},
			},
			{
				Name:    "rm",
				Aliases: []string{"remove"},
				Usage:   "Remove an installed instance",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "launcher", Value: fileutils.DefaultLauncher(), Usage: "vanilla or prism"},
				},
				Action: func(c *cli.Context) error {
					installer := services.NewInstaller()
					if err := installer.Uninstall(c.Args().Get(0), paths.Launcher(c.String("launcher"))); err != nil {
						return err
					}
					fmt.Println("Removed " + c.Args().Get(0))
					return nil
				},
			},
			{
				Name:  "launch",
				Usage: "Launch an instance through Prism",
				Action: func(c *cli.Context) error {
					return services.LaunchPrism(paths.Detect(), c.Args().Get(0))
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func confirm(prompt string) bool {
	fmt.Print(prompt + " [y/N] ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nvr-ai/iconkit/config"
	"github.com/nvr-ai/iconkit/pipeline"
)

const (
	// DefaultLogoPath is the master logo, relative to the repository root.
	DefaultLogoPath = "assets/img/logo/logo.png"
)

func main() {
	defaults := pipeline.DefaultOutputs("")

	var (
		root         = flag.String("root", ".", "Repository root that relative paths resolve against")
		logoPath     = flag.String("logo", DefaultLogoPath, "Path to the master logo (must have an alpha channel)")
		configFile   = flag.String("config", "", "Optional YAML file overriding sizes, ratios and colors")
		appIcon      = flag.String("app-icon", defaults.AppIcon, "Output path of the app icon")
		dockDir      = flag.String("dock-dir", defaults.DockDir, "Image set directory for the Dock refresh asset")
		trayTemplate = flag.String("tray-template", defaults.TrayTemplate, "Output path of the template tray icon")
		trayColored  = flag.String("tray-colored", defaults.TrayColored, "Output path of the colored tray icon")
		verbose      = flag.Bool("verbose", false, "Log every file as it is written")
	)
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(resolve(*root, *configFile))
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	g := &pipeline.Generator{
		Config: cfg,
		Outputs: pipeline.Outputs{
			AppIcon:      resolve(*root, *appIcon),
			DockDir:      resolve(*root, *dockDir),
			TrayTemplate: resolve(*root, *trayTemplate),
			TrayColored:  resolve(*root, *trayColored),
		},
	}
	if *verbose {
		g.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	written, err := g.Generate(resolve(*root, *logoPath))
	if err != nil {
		log.Fatalf("Failed to generate icons: %v", err)
	}

	fmt.Println("Generated:")
	for _, path := range written {
		fmt.Printf("- %s\n", path)
	}
}

// resolve joins relative paths onto root and leaves absolute paths alone.
func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

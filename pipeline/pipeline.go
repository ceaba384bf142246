// Package pipeline - derives the full icon set from a master logo and writes it to disk.
package pipeline

import (
	"image"
	"log"
	"path/filepath"

	"github.com/nvr-ai/iconkit/config"
	"github.com/nvr-ai/iconkit/images"
	"github.com/nvr-ai/iconkit/util"
	"github.com/pkg/errors"
)

// DockIconName is the file name of the Dock refresh asset inside its image set.
const DockIconName = "dock_icon_1024.png"

// Icons holds every rendered variant.
type Icons struct {
	// AppIcon is the launcher icon with its rounded-rectangle plate.
	AppIcon *image.NRGBA
	// TrayTemplate is the black silhouette the OS tints itself.
	TrayTemplate *image.NRGBA
	// TrayColored is the circle plate with the glyph punched out.
	TrayColored *image.NRGBA
}

// Outputs are the destination paths of the generated files.
type Outputs struct {
	AppIcon      string
	DockDir      string
	TrayTemplate string
	TrayColored  string
}

// DefaultOutputs returns the stock destinations relative to root.
func DefaultOutputs(root string) Outputs {
	return Outputs{
		AppIcon:      filepath.Join(root, "assets/icon/app_icon.png"),
		DockDir:      filepath.Join(root, "macos/Runner/Assets.xcassets/DockIcon.imageset"),
		TrayTemplate: filepath.Join(root, "assets/img/logo/tray_template.png"),
		TrayColored:  filepath.Join(root, "assets/img/logo/tray_colored.png"),
	}
}

// Render derives every icon variant from a cropped logo.
//
// Arguments:
//   - logo: The master logo, already cropped to its content.
//   - cfg: The pipeline configuration.
//
// Returns:
//   - Icons: The rendered variants.
//   - error: Error if the configuration is invalid.
func Render(logo image.Image, cfg config.Config) (Icons, error) {
	if err := cfg.Validate(); err != nil {
		return Icons{}, err
	}

	appIcon, err := RenderAppIcon(logo, cfg)
	if err != nil {
		return Icons{}, err
	}
	trayColored, err := RenderTrayColored(logo, cfg)
	if err != nil {
		return Icons{}, err
	}

	return Icons{
		AppIcon:      appIcon,
		TrayTemplate: RenderTrayTemplate(logo, cfg),
		TrayColored:  trayColored,
	}, nil
}

// RenderAppIcon composes the logo on the app icon canvas and puts a
// rounded-rectangle plate beneath it.
func RenderAppIcon(logo image.Image, cfg config.Config) (*image.NRGBA, error) {
	bg, err := cfg.AppIconBackground()
	if err != nil {
		return nil, errors.Wrap(err, "app icon background")
	}
	content := images.CompositeOnCanvas(logo, cfg.AppIconSize, cfg.AppIconScale, images.CompositeOptions{})
	inset, radius := cfg.AppIconPlate()
	return images.AddRoundedRectUnderlay(content, inset, radius, bg), nil
}

// RenderTrayTemplate renders the monochrome silhouette with no background.
func RenderTrayTemplate(logo image.Image, cfg config.Config) *image.NRGBA {
	return images.CompositeOnCanvas(logo, cfg.TrayIconSize, cfg.TrayTemplateScale, images.CompositeOptions{
		Monochrome: true,
	})
}

// RenderTrayColored cuts the dilated glyph out of an opaque circle plate.
func RenderTrayColored(logo image.Image, cfg config.Config) (*image.NRGBA, error) {
	bg, err := cfg.TrayBackground()
	if err != nil {
		return nil, errors.Wrap(err, "tray background")
	}

	glyph := images.CompositeOnCanvas(logo, cfg.TrayIconSize, cfg.TrayGlyphScale, images.CompositeOptions{
		Monochrome: true,
		OffsetX:    cfg.TrayGlyphOffsetX,
		OffsetY:    cfg.TrayGlyphOffsetY,
	})
	glyph = images.Dilate(glyph, cfg.TrayDilateRadius)

	plate := images.AddCircleUnderlay(images.NewCanvas(cfg.TrayIconSize), cfg.TrayBgInset, bg)
	return images.SubtractMask(plate, images.NewMask(glyph)), nil
}

// Generator loads the logo, renders every variant and persists it.
type Generator struct {
	Config  config.Config
	Outputs Outputs
	// Logger receives one line per written file. Nil keeps the generator silent.
	Logger *log.Logger
}

// Generate runs the whole pipeline for the logo at logoPath.
//
// The run stops at the first failure; files written before it are left in place.
//
// Arguments:
//   - logoPath: Path to the master logo.
//
// Returns:
//   - []string: The written files in order, with the Dock image set directory
//     in place of the Dock asset.
//   - error: Error if loading, rendering or writing fails.
func (g *Generator) Generate(logoPath string) ([]string, error) {
	logo, err := util.LoadCroppedLogo(logoPath)
	if err != nil {
		return nil, err
	}

	icons, err := Render(logo, g.Config)
	if err != nil {
		return nil, err
	}

	dockIcon := filepath.Join(g.Outputs.DockDir, DockIconName)
	writes := []struct {
		path string
		img  image.Image
	}{
		{g.Outputs.AppIcon, icons.AppIcon},
		{dockIcon, icons.AppIcon},
		{g.Outputs.TrayTemplate, icons.TrayTemplate},
		{g.Outputs.TrayColored, icons.TrayColored},
	}
	for _, w := range writes {
		if err := util.SavePNG(w.path, w.img); err != nil {
			return nil, err
		}
		g.logf("wrote %s (%dx%d, md5 %s)", w.path, w.img.Bounds().Dx(), w.img.Bounds().Dy(), images.Checksum(w.img))
	}

	return []string{g.Outputs.AppIcon, g.Outputs.DockDir, g.Outputs.TrayTemplate, g.Outputs.TrayColored}, nil
}

func (g *Generator) logf(format string, args ...any) {
	if g.Logger != nil {
		g.Logger.Printf(format, args...)
	}
}

// Package pack assembles the distributable output tree for a resolved
// wallpaper collection: images, desktop-environment metadata, and the
// symlink farms the desktops expect.
package pack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wallpack-dev/wallpack/internal/collection"
	"github.com/wallpack-dev/wallpack/internal/convert"
	"github.com/wallpack-dev/wallpack/internal/platform"
	"github.com/wallpack-dev/wallpack/internal/render"
)

// destDirs is the output directory skeleton.
var destDirs = []string{
	"usr/share/wallpapers",
	"usr/share/backgrounds/xfce",
	"usr/share/background-properties",
	"usr/share/gnome-background-properties",
	"usr/share/mate-background-properties",
}

// mainlineResolutions are the advertised sizes for the normal variant; the
// image itself is scaled by the desktop, so these are symlinks.
var mainlineResolutions = []string{
	"800x600", "1024x768", "1152x768", "1280x800", "1280x854", "1280x960",
	"1280x1024", "1366x768", "1440x900", "1440x960", "1600x900", "1600x1200",
	"1680x1050", "1920x1080", "1920x1200", "2048x1536", "2048x2048",
	"2160x1440", "2520x1080", "2560x1600", "2560x2048", "2880x1800",
	"3000x2000", "3360x1440", "3840x2160", "4096x4096", "4500x3000",
	"5120x4096",
}

// retroResolutions are materialized as real downscaled PNGs for low-memory
// targets.
var retroResolutions = []string{"800x600", "1280x960", "1600x1200", "1920x1200"}

// retroScreenshotRes is the rendition the screenshot symlink points at.
const retroScreenshotRes = "1280x960"

// xfceRatios are the aspect-ratio names Xfce looks up under backgrounds/xfce.
var xfceRatios = []string{"1-1", "16-10", "16-9", "21-9", "3-2", "4-3", "5-4"}

// Variant selects the build flavor.
type Variant int

const (
	// Normal installs the original images and symlinks every advertised
	// resolution to them.
	Normal Variant = iota
	// Retro converts each image to the small retro resolution set instead
	// of shipping the original.
	Retro
)

// ParseVariant maps a CLI variant name to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "normal":
		return Normal, nil
	case "retro":
		return Retro, nil
	default:
		return Normal, fmt.Errorf("unknown variant %q (expected \"normal\" or \"retro\")", s)
	}
}

func (v Variant) String() string {
	if v == Retro {
		return "retro"
	}
	return "normal"
}

// Builder assembles a pack into Dest.
type Builder struct {
	Dest    string
	Variant Variant
	Jobs    int       // max concurrent entries; <=0 means NumCPU
	Log     io.Writer // progress output; nil discards
}

// Build processes every entry and writes the album config. Entries are
// processed concurrently with a bounded worker group.
func (b *Builder) Build(packName string, entries []collection.Entry) error {
	if b.Log == nil {
		b.Log = io.Discard
	}

	if err := b.makeDestDirs(); err != nil {
		return err
	}

	jobs := b.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	var g errgroup.Group
	g.SetLimit(jobs)
	for _, entry := range entries {
		g.Go(func() error {
			return b.processEntry(entry)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return b.writeAlbumConfig(packName, entries)
}

// makeDestDirs creates the output directory skeleton.
func (b *Builder) makeDestDirs() error {
	for _, dir := range destDirs {
		if err := os.MkdirAll(filepath.Join(b.Dest, dir), 0755); err != nil {
			return fmt.Errorf("creating destination directory %s: %w", dir, err)
		}
	}
	return nil
}

// processEntry installs one wallpaper: metadata.desktop, the image (copied
// or converted), and the screenshot/ratio/resolution symlinks.
func (b *Builder) processEntry(entry collection.Entry) error {
	wallpaperDir := filepath.Join(b.Dest, "usr/share/wallpapers", entry.EntryName)
	imagesDir := filepath.Join(wallpaperDir, "contents/images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", imagesDir, err)
	}

	desktop, err := render.KDEMetadata(desktopEntry(entry))
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(wallpaperDir, "metadata.desktop"), []byte(desktop), 0644); err != nil {
		return fmt.Errorf("writing metadata.desktop for %s: %w", entry.EntryName, err)
	}

	if b.Variant == Retro {
		if err := b.processRetro(entry, imagesDir, wallpaperDir); err != nil {
			return err
		}
	} else {
		if err := b.processNormal(entry, imagesDir, wallpaperDir); err != nil {
			return err
		}
	}

	for _, ratio := range xfceRatios {
		link := filepath.Join(b.Dest, "usr/share/backgrounds/xfce",
			fmt.Sprintf("%s-%s.%s", entry.EntryName, ratio, entry.Format))
		if err := platform.CreateSymlink(entry.ImagePath, link); err != nil {
			return fmt.Errorf("creating Xfce symlink %s: %w", link, err)
		}
	}

	return nil
}

// processNormal copies the original image into place and fans out the
// screenshot and resolution symlinks.
func (b *Builder) processNormal(entry collection.Entry, imagesDir, wallpaperDir string) error {
	installed := filepath.Join(b.Dest, relInstallPath(entry.ImagePath))
	if err := os.MkdirAll(filepath.Dir(installed), 0755); err != nil {
		return fmt.Errorf("creating image directory for %s: %w", entry.EntryName, err)
	}

	fmt.Fprintf(b.Log, "Copying %s -> %s\n", entry.SourceFile(), installed)
	if err := copyFile(entry.SourceFile(), installed); err != nil {
		return fmt.Errorf("copying image for %s: %w", entry.EntryName, err)
	}

	screenshot := filepath.Join(wallpaperDir, "screenshot."+entry.Format)
	if err := platform.CreateSymlink(entry.ImagePath, screenshot); err != nil {
		return fmt.Errorf("creating screenshot symlink for %s: %w", entry.EntryName, err)
	}

	for _, res := range mainlineResolutions {
		link := filepath.Join(imagesDir, res+"."+entry.Format)
		if err := platform.CreateSymlink(entry.ImagePath, link); err != nil {
			return fmt.Errorf("creating resolution symlink %s: %w", link, err)
		}
	}
	return nil
}

// processRetro materializes each retro resolution through ImageMagick.
func (b *Builder) processRetro(entry collection.Entry, imagesDir, wallpaperDir string) error {
	for _, res := range retroResolutions {
		fmt.Fprintf(b.Log, "Converting %s at %s\n", entry.EntryName, res)
		png, err := convert.Resize(entry.SourceFile(), res)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(imagesDir, res+".png"), png, 0644); err != nil {
			return fmt.Errorf("writing %s rendition for %s: %w", res, entry.EntryName, err)
		}
	}

	target := fmt.Sprintf("/usr/share/wallpapers/%s/contents/images/%s.png",
		entry.EntryName, retroScreenshotRes)
	screenshot := filepath.Join(wallpaperDir, "screenshot.png")
	if err := platform.CreateSymlink(target, screenshot); err != nil {
		return fmt.Errorf("creating screenshot symlink for %s: %w", entry.EntryName, err)
	}
	return nil
}

// writeAlbumConfig renders the GNOME album XML and symlinks it from the
// gnome/mate property directories.
func (b *Builder) writeAlbumConfig(packName string, entries []collection.Entry) error {
	fmt.Fprintf(b.Log, "Writing album manifest for %s\n", packName)

	desktopEntries := make([]render.DesktopEntry, 0, len(entries))
	for _, e := range entries {
		desktopEntries = append(desktopEntries, desktopEntry(e))
	}

	xml, err := render.GNOMEAlbum(desktopEntries)
	if err != nil {
		return err
	}

	configFile := collection.AlbumName(packName) + ".xml"
	installPath := "/usr/share/background-properties/" + configFile
	if err := os.WriteFile(filepath.Join(b.Dest, relInstallPath(installPath)), []byte(xml), 0644); err != nil {
		return fmt.Errorf("writing album config %s: %w", configFile, err)
	}

	for _, dir := range []string{"usr/share/gnome-background-properties", "usr/share/mate-background-properties"} {
		link := filepath.Join(b.Dest, dir, configFile)
		if err := platform.CreateSymlink(installPath, link); err != nil {
			return fmt.Errorf("creating album config symlink %s: %w", link, err)
		}
	}
	return nil
}

// desktopEntry maps a resolved entry onto the template input.
func desktopEntry(e collection.Entry) render.DesktopEntry {
	return render.DesktopEntry{
		Title:     e.Title,
		Artist:    e.Artist,
		Email:     e.Email,
		License:   e.License,
		EntryName: e.EntryName,
		ImagePath: e.ImagePath,
	}
}

// relInstallPath strips the leading slash from an absolute install path so
// it can be joined under the destination root.
func relInstallPath(p string) string {
	return strings.TrimPrefix(p, "/")
}

// copyFile copies src to dst, truncating dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// Package convert shells out to ImageMagick to produce downscaled wallpaper
// renditions for the retro variant.
package convert

import (
	"fmt"
	"os"
	"os/exec"
)

// Binary is the ImageMagick executable the retro pipeline requires.
const Binary = "convert"

// Resize renders the source image at the given geometry (e.g. "1280x960")
// as an indexed PNG and returns the encoded bytes. ImageMagick's stderr is
// passed through so conversion diagnostics reach the user.
func Resize(src, geometry string) ([]byte, error) {
	cmd := exec.Command(Binary, src,
		"-gravity", "center",
		"-quality", "80",
		"-resize", geometry,
		"-colors", "256",
		"PNG8:-")
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running ImageMagick on %s: %w", src, err)
	}
	return out, nil
}

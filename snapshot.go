package blocky

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// GridImage renders g with each unit cell as a cell x cell square of pixels.
func GridImage(g Grid, cell int) *image.NRGBA {
	if cell < 1 {
		cell = 1
	}
	side := g.Side() * cell
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	for r, row := range g {
		for c, clr := range row {
			px := clr.toNRGBA()
			for y := r * cell; y < (r+1)*cell; y++ {
				for x := c * cell; x < (c+1)*cell; x++ {
					img.SetNRGBA(x, y, px)
				}
			}
		}
	}
	return img
}

// Snapshot writes the flattened board to path as a PNG, scaled so that each
// unit cell covers cell x cell pixels. Parent directories are created.
func (b *Board) Snapshot(path string, cell int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("snapshot: mkdir %s: %w", dir, err)
		}
	}
	return writePNG(path, GridImage(b.root.Flatten(), cell))
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return f.Close()
}

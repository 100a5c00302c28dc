// Package swatch renders colour swatches as PNG images.
package swatch

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jmylchreest/herx/internal/colour"
	"github.com/jmylchreest/herx/internal/herx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Entry is a single labelled block in a swatch.
type Entry struct {
	Label  string
	Colour colour.RGB
}

// Size limits for rendered swatches.
const (
	MaxBlockSize  = 4096
	MaxImageWidth = 1 << 16
)

// Options controls the size of each block.
type Options struct {
	BlockWidth  int
	BlockHeight int
	// Labels draws the entry label and hex code on each block.
	Labels bool
}

// DefaultOptions returns options for 160x100 labelled blocks.
func DefaultOptions() Options {
	return Options{
		BlockWidth:  160,
		BlockHeight: 100,
		Labels:      true,
	}
}

// Validate checks that count blocks of the configured size can be rendered.
func (o Options) Validate(count int) error {
	if count <= 0 {
		return errors.New("no colours to render")
	}
	if o.BlockWidth <= 0 || o.BlockHeight <= 0 {
		return fmt.Errorf("invalid block size %dx%d", o.BlockWidth, o.BlockHeight)
	}
	if o.BlockWidth > MaxBlockSize || o.BlockHeight > MaxBlockSize {
		return fmt.Errorf("block size %dx%d exceeds maximum %dx%d", o.BlockWidth, o.BlockHeight, MaxBlockSize, MaxBlockSize)
	}
	if o.BlockWidth > MaxImageWidth/count {
		return fmt.Errorf("%d blocks of width %d exceed maximum image width %d", count, o.BlockWidth, MaxImageWidth)
	}
	return nil
}

// EntriesFromResult returns the four colours of an evaluation in pipeline order.
func EntriesFromResult(res *herx.Result) []Entry {
	return []Entry{
		{Label: "colour1", Colour: res.Colour1},
		{Label: "colour2", Colour: res.Colour2},
		{Label: "base", Colour: res.Base},
		{Label: "similar", Colour: res.Similar},
	}
}

// Render draws the entries side by side, left to right.
func Render(entries []Entry, opts Options) (*image.RGBA, error) {
	if err := opts.Validate(len(entries)); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.BlockWidth*len(entries), opts.BlockHeight))
	for i, e := range entries {
		block := image.Rect(i*opts.BlockWidth, 0, (i+1)*opts.BlockWidth, opts.BlockHeight)
		draw.Draw(img, block, image.NewUniform(e.Colour), image.Point{}, draw.Src)

		if opts.Labels {
			drawLabel(img, block, e)
		}
	}

	return img, nil
}

// Encode renders the entries and writes them to w as a PNG.
func Encode(w io.Writer, entries []Entry, opts Options) error {
	img, err := Render(entries, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode swatch: %w", err)
	}
	return nil
}

// drawLabel writes the label and hex code centred near the bottom of block.
// Blocks too short to hold both lines are left unlabelled.
func drawLabel(img *image.RGBA, block image.Rectangle, e Entry) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colour.ContrastText(e.Colour)),
		Face: face,
	}

	lines := []string{e.Label, e.Colour.Hex()}
	lineHeight := face.Metrics().Height.Ceil()
	if block.Dy() < lineHeight*len(lines) {
		return
	}
	y := block.Max.Y - lineHeight*len(lines)
	for _, line := range lines {
		y += lineHeight
		width := d.MeasureString(line).Ceil()
		x := block.Min.X + (block.Dx()-width)/2
		d.Dot = fixed.P(x, y-face.Metrics().Descent.Ceil())
		d.DrawString(line)
	}
}

package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// ImageService encodes rendered chart images.
//
// ImageService is used to:
//   - Encode single frames as PNG or JPEG
//   - Assemble animation frames into an animated GIF
//
// Example usage:
//
//	svc := NewImageService()
//	data, err := svc.EncodePNG(ctx, img)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// EncodePNG encodes img as PNG.
func (s *ImageService) EncodePNG(ctx context.Context, img image.Image) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJPEG encodes img as JPEG with the given quality (1-100).
//
// JPEG has no alpha channel, so transparent backgrounds come out black.
func (s *ImageService) EncodeJPEG(ctx context.Context, img image.Image, quality int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeGIF assembles frames into an animated GIF that plays once and
// holds the last frame.
//
// Parameters:
//   - ctx: Context for cancellation, checked between frames
//   - frames: Frames in playback order, all the same size
//   - colors: Colors that must be exact in the palette (background and
//     part colors); the remaining entries are filled from the Plan 9
//     palette and anti-aliased edges are dithered
//   - delay: Delay between frames in 100ths of a second
func (s *ImageService) EncodeGIF(ctx context.Context, frames []image.Image, colors []color.Color, delay int) ([]byte, error) {
	pal := buildPalette(colors)
	anim := &gif.GIF{LoopCount: -1}

	for _, frame := range frames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		b := frame.Bounds()
		dst := image.NewPaletted(b, pal)
		draw.FloydSteinberg.Draw(dst, b, frame, b.Min)

		anim.Image = append(anim.Image, dst)
		anim.Delay = append(anim.Delay, delay)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildPalette returns a 256 color palette starting with colors, padded
// from palette.Plan9.
func buildPalette(colors []color.Color) color.Palette {
	pal := make(color.Palette, 0, 256)
	seen := make(map[color.RGBA]bool)

	add := func(c color.Color) {
		rgba := color.RGBAModel.Convert(c).(color.RGBA)
		if len(pal) < cap(pal) && !seen[rgba] {
			seen[rgba] = true
			pal = append(pal, rgba)
		}
	}

	for _, c := range colors {
		add(c)
	}
	for _, c := range palette.Plan9 {
		add(c)
	}
	return pal
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Checker returns a cells x cells checkerboard, one pixel per cell. The
// top-left cell is a.
func Checker(cells int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cells, cells))
	for y := range cells {
		for x := range cells {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}

// Upscale scales src to size x size pixels with nearest-neighbour sampling,
// keeping cell edges sharp.
func Upscale(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

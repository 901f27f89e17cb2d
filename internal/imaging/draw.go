package imaging

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// grayValue clamps a float intensity into an 8-bit gray pixel.
func grayValue(v float64) color.Gray {
	switch {
	case v < 0:
		return color.Gray{Y: 0}
	case v > 255:
		return color.Gray{Y: 255}
	default:
		return color.Gray{Y: uint8(v + 0.5)}
	}
}

// drawRect outlines the rectangle on img with the given stroke thickness.
func drawRect(img *image.RGBA, r image.Rectangle, c color.RGBA, thickness int) {
	for t := 0; t < thickness; t++ {
		for x := r.Min.X - t; x <= r.Max.X+t; x++ {
			setIfInside(img, x, r.Min.Y-t, c)
			setIfInside(img, x, r.Max.Y+t, c)
		}
		for y := r.Min.Y - t; y <= r.Max.Y+t; y++ {
			setIfInside(img, r.Min.X-t, y, c)
			setIfInside(img, r.Max.X+t, y, c)
		}
	}
}

// drawCircle outlines a circle using the midpoint algorithm.
func drawCircle(img *image.RGBA, cx, cy, radius int, c color.RGBA, thickness int) {
	for t := 0; t < thickness; t++ {
		r := radius + t
		x, y, err := r, 0, 1-r
		for x >= y {
			setIfInside(img, cx+x, cy+y, c)
			setIfInside(img, cx-x, cy+y, c)
			setIfInside(img, cx+x, cy-y, c)
			setIfInside(img, cx-x, cy-y, c)
			setIfInside(img, cx+y, cy+x, c)
			setIfInside(img, cx-y, cy+x, c)
			setIfInside(img, cx+y, cy-x, c)
			setIfInside(img, cx-y, cy-x, c)
			y++
			if err < 0 {
				err += 2*y + 1
			} else {
				x--
				err += 2*(y-x) + 1
			}
		}
	}
}

// drawLabel renders small annotation text at (x, y), the text baseline.
func drawLabel(img *image.RGBA, x, y int, text string, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func setIfInside(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}

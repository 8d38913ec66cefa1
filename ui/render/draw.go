package render

import (
	"image/color"

	"neoportal/hal"
)

const cornerRadius = 10

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fillRect clips to the canvas before handing the rectangle to the driver.
func fillRect(c hal.Canvas, x, y, w, h int, col color.RGBA) error {
	sw, sh := c.Size()
	x0 := clampInt(x, 0, int(sw))
	y0 := clampInt(y, 0, int(sh))
	x1 := clampInt(x+w, 0, int(sw))
	y1 := clampInt(y+h, 0, int(sh))
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	return c.FillRectangle(int16(x0), int16(y0), int16(x1-x0), int16(y1-y0), col)
}

// cornerInset returns how far row dy (counted from the outer edge) of an
// r-radius corner is indented.
func cornerInset(dy, r int) int {
	v := r - dy
	dx := 0
	for (dx+1)*(dx+1)+v*v <= r*r {
		dx++
	}
	return r - dx
}

// fillRoundRect fills a box with rounded corners one row span at a time.
func fillRoundRect(c hal.Canvas, x, y, w, h, r int, col color.RGBA) error {
	r = min(r, w/2, h/2)
	if r <= 0 {
		return fillRect(c, x, y, w, h, col)
	}
	if err := fillRect(c, x, y+r, w, h-2*r, col); err != nil {
		return err
	}
	for dy := 0; dy < r; dy++ {
		in := cornerInset(dy, r)
		if err := fillRect(c, x+in, y+dy, w-2*in, 1, col); err != nil {
			return err
		}
		if err := fillRect(c, x+in, y+h-1-dy, w-2*in, 1, col); err != nil {
			return err
		}
	}
	return nil
}

// box draws a one pixel outline around a filled body.
func box(c hal.Canvas, x, y, w, h int, round bool, fill, outline color.RGBA) error {
	if !round {
		if err := fillRect(c, x, y, w, h, outline); err != nil {
			return err
		}
		return fillRect(c, x+1, y+1, w-2, h-2, fill)
	}
	if err := fillRoundRect(c, x, y, w, h, cornerRadius, outline); err != nil {
		return err
	}
	return fillRoundRect(c, x+1, y+1, w-2, h-2, cornerRadius-1, fill)
}

package objectdetection

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/golang/geo/r2"
	"golang.org/x/image/font/gofont/goregular"
)

var overlayFont *truetype.Font

// init sets up the font used for detection labels.
func init() {
	var err error
	overlayFont, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

var boxColor = color.NRGBA{255, 0, 0, 255}

// Overlay returns a copy of the image with every detection's bounding box
// and "label: confidence" caption drawn on top of it.
func Overlay(img image.Image, dets []Detection) (image.Image, error) {
	dc := gg.NewContextForImage(img)
	for _, d := range dets {
		rect := d.BoundingBox().R2Rect()
		drawRectangleEmpty(dc, rect, boxColor, 2)
		caption := fmt.Sprintf("%s: %.2f", d.Label(), d.Confidence())
		drawString(dc, caption, rect.X.Lo, rect.Y.Lo-4, boxColor, 14)
	}
	return dc.Image(), nil
}

// drawRectangleEmpty draws the outline of the given rectangle into the context.
func drawRectangleEmpty(dc *gg.Context, r r2.Rect, c color.Color, width float64) {
	dc.SetColor(c)

	dc.DrawLine(r.X.Lo, r.Y.Lo, r.X.Hi, r.Y.Lo)
	dc.SetLineWidth(width)
	dc.Stroke()

	dc.DrawLine(r.X.Lo, r.Y.Lo, r.X.Lo, r.Y.Hi)
	dc.SetLineWidth(width)
	dc.Stroke()

	dc.DrawLine(r.X.Hi, r.Y.Lo, r.X.Hi, r.Y.Hi)
	dc.SetLineWidth(width)
	dc.Stroke()

	dc.DrawLine(r.X.Lo, r.Y.Hi, r.X.Hi, r.Y.Hi)
	dc.SetLineWidth(width)
	dc.Stroke()
}

// drawString writes a string to the given context at a particular point.
func drawString(dc *gg.Context, text string, x, y float64, c color.Color, size float64) {
	dc.SetFontFace(truetype.NewFace(overlayFont, &truetype.Options{Size: size}))
	dc.SetColor(c)
	dc.DrawStringWrapped(text, x, y, 0, 0, float64(dc.Width()), 1, 0)
}

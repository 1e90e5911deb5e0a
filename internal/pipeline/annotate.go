package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/proctor-ai/internal/detector"
)

var (
	personColor     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	contrabandColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	landmarkColor   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	livenessColor   = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	// Premultiplied red at 35% opacity for the violation wash.
	violationWash = color.RGBA{R: 89, G: 0, B: 0, A: 89}
)

const jpegQuality = 80

func decodeFrame(data []byte) (image.Image, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	return img, nil
}

func encodeFrame(img image.Image) []byte {
	var buf bytes.Buffer
	// Encoding an in-memory RGBA cannot fail on a bytes.Buffer.
	_ = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	return buf.Bytes()
}

// renderAnnotated draws detections, landmarks and verdict state onto a copy
// of the frame and re-encodes it.
func renderAnnotated(src image.Image, report Report, landmarks *detector.FaceLandmarks) []byte {
	bounds := src.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, src, bounds.Min, draw.Src)

	for _, d := range report.Detections {
		boxColor := contrabandColor
		if d.Label == detector.LabelPerson {
			boxColor = personColor
		}
		drawBox(canvas, d.Box, boxColor)
		drawText(canvas, d.Box.X1, d.Box.Y1-4, fmt.Sprintf("%s %.2f", d.Label, d.Confidence), boxColor)
	}

	if landmarks != nil {
		for _, p := range landmarks.LeftEye {
			drawDot(canvas, p)
		}
		for _, p := range landmarks.RightEye {
			drawDot(canvas, p)
		}
		drawDot(canvas, landmarks.Nose)
	}

	if report.Violation {
		draw.Draw(canvas, bounds, image.NewUniform(violationWash), image.Point{}, draw.Over)
	}

	if report.Liveness.IsAlive {
		drawText(canvas, bounds.Min.X+20, bounds.Min.Y+40, "Liveness Confirmed", livenessColor)
	}

	return encodeFrame(canvas)
}

func drawBox(canvas *image.RGBA, box detector.BoundingBox, c color.RGBA) {
	const thickness = 2
	top := image.Rect(box.X1, box.Y1, box.X2, box.Y1+thickness)
	bottom := image.Rect(box.X1, box.Y2-thickness, box.X2, box.Y2)
	left := image.Rect(box.X1, box.Y1, box.X1+thickness, box.Y2)
	right := image.Rect(box.X2-thickness, box.Y1, box.X2, box.Y2)
	for _, edge := range []image.Rectangle{top, bottom, left, right} {
		draw.Draw(canvas, edge.Intersect(canvas.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
	}
}

func drawDot(canvas *image.RGBA, p detector.Point) {
	dot := image.Rect(int(p.X)-2, int(p.Y)-2, int(p.X)+2, int(p.Y)+2)
	draw.Draw(canvas, dot.Intersect(canvas.Bounds()), image.NewUniform(landmarkColor), image.Point{}, draw.Src)
}

func drawText(canvas *image.RGBA, x, y int, text string, c color.RGBA) {
	drawer := font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(text)
}

package pipeline

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"drone-vision-go/internal/models"
)

var (
	boxColor      = color.RGBA{R: 16, G: 220, B: 96, A: 255}
	labelBgColor  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	labelFgColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cornerLength  = 12
	cornerWeight  = 3
	boxLineWeight = 2
)

// Annotate draws detection boxes with corner accents and confidence labels
// onto a copy of the frame and returns it as a base64 JPEG at the requested
// quality. The input Mat is not modified.
func Annotate(img gocv.Mat, detections []models.Detection, quality int) (string, error) {
	canvas := img.Clone()
	defer canvas.Close()

	for _, det := range detections {
		drawDetection(&canvas, det)
	}

	encoded, err := encodeJPEGBase64(canvas, quality)
	if err != nil {
		return "", fmt.Errorf("failed to encode annotated image: %w", err)
	}
	return encoded, nil
}

func drawDetection(canvas *gocv.Mat, det models.Detection) {
	x1, y1 := int(det.BBox[0]), int(det.BBox[1])
	x2, y2 := int(det.BBox[2]), int(det.BBox[3])

	gocv.Rectangle(canvas, image.Rect(x1, y1, x2, y2), boxColor, boxLineWeight)

	// Corner accents for a tracker-style look
	gocv.Line(canvas, image.Pt(x1, y1), image.Pt(x1+cornerLength, y1), boxColor, cornerWeight)
	gocv.Line(canvas, image.Pt(x1, y1), image.Pt(x1, y1+cornerLength), boxColor, cornerWeight)
	gocv.Line(canvas, image.Pt(x2, y1), image.Pt(x2-cornerLength, y1), boxColor, cornerWeight)
	gocv.Line(canvas, image.Pt(x2, y1), image.Pt(x2, y1+cornerLength), boxColor, cornerWeight)
	gocv.Line(canvas, image.Pt(x1, y2), image.Pt(x1+cornerLength, y2), boxColor, cornerWeight)
	gocv.Line(canvas, image.Pt(x1, y2), image.Pt(x1, y2-cornerLength), boxColor, cornerWeight)
	gocv.Line(canvas, image.Pt(x2, y2), image.Pt(x2-cornerLength, y2), boxColor, cornerWeight)
	gocv.Line(canvas, image.Pt(x2, y2), image.Pt(x2, y2-cornerLength), boxColor, cornerWeight)

	label := fmt.Sprintf("%s %.0f%%", det.Label, det.Confidence*100)
	fontFace := gocv.FontHersheySimplex
	fontScale := 0.5
	size := gocv.GetTextSize(label, fontFace, fontScale, 1)

	textY := y1 - 6
	if textY < size.Y+4 {
		textY = y1 + size.Y + 6
	}

	gocv.Rectangle(canvas, image.Rect(x1, textY-size.Y-4, x1+size.X+8, textY+4), labelBgColor, -1)
	gocv.PutText(canvas, label, image.Pt(x1+4, textY), fontFace, fontScale, labelFgColor, 1)
}

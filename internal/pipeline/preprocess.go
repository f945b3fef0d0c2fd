package pipeline

import (
	"fmt"
	"image"
	"time"

	"gocv.io/x/gocv"

	"drone-vision-go/internal/config"
	"drone-vision-go/internal/models"
)

// CLAHE parameters for luminance enhancement.
const (
	claheClipLimit = 2.0
	claheTileGrid  = 8
)

// Prepared is the output of frame preparation. Display holds the resized BGR
// frame before enhancement (quality metrics and the thermal render come from
// it); Enhanced holds the CLAHE-enhanced frame handed to the detection model
// and the annotation overlay. Callers must Close it.
type Prepared struct {
	Display    gocv.Mat
	Enhanced   gocv.Mat
	Quality    *models.QualityMetrics
	Resolution string
	Elapsed    time.Duration
}

func (p *Prepared) Close() {
	p.Display.Close()
	p.Enhanced.Close()
}

// Prepare decodes raw frame bytes and runs the preprocessing pipeline:
// aspect-preserving downscale to the configured maximum size with an
// area-averaging filter, quality analysis on the pre-enhancement buffer, and
// CLAHE on the LAB luminance channel. Returns ErrDecode when the bytes are not
// a valid image.
func Prepare(raw []byte, settings config.Settings) (*Prepared, error) {
	start := time.Now()

	img, err := gocv.IMDecode(raw, gocv.IMReadColor)
	if err != nil || img.Empty() {
		if err == nil {
			img.Close()
			err = fmt.Errorf("empty pixel buffer")
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	maxW, maxH := settings.MaxFrameSize[0], settings.MaxFrameSize[1]
	w, h := img.Cols(), img.Rows()
	if w > maxW || h > maxH {
		scale := minFloat(float64(maxW)/float64(w), float64(maxH)/float64(h))
		resized := gocv.NewMat()
		gocv.Resize(img, &resized, image.Pt(int(float64(w)*scale), int(float64(h)*scale)), 0, 0, gocv.InterpolationArea)
		img.Close()
		img = resized
	}

	var quality *models.QualityMetrics
	if settings.EnableBlurDetection {
		metrics := ComputeQualityMetrics(img)
		quality = &metrics
	}

	enhanced := enhanceContrast(img, settings.EnableCLAHE)

	return &Prepared{
		Display:    img,
		Enhanced:   enhanced,
		Quality:    quality,
		Resolution: fmt.Sprintf("%dx%d", img.Cols(), img.Rows()),
		Elapsed:    time.Since(start),
	}, nil
}

// enhanceContrast applies CLAHE to the L channel in LAB color space so color
// balance is preserved. Disabled enhancement returns a plain copy.
func enhanceContrast(img gocv.Mat, enabled bool) gocv.Mat {
	if !enabled {
		return img.Clone()
	}

	lab := gocv.NewMat()
	defer lab.Close()
	gocv.CvtColor(img, &lab, gocv.ColorBGRToLab)

	channels := gocv.Split(lab)
	defer func() {
		for _, ch := range channels {
			ch.Close()
		}
	}()

	clahe := gocv.NewCLAHEWithParams(claheClipLimit, image.Pt(claheTileGrid, claheTileGrid))
	defer clahe.Close()

	lEnhanced := gocv.NewMat()
	defer lEnhanced.Close()
	clahe.Apply(channels[0], &lEnhanced)

	merged := gocv.NewMat()
	defer merged.Close()
	gocv.Merge([]gocv.Mat{lEnhanced, channels[1], channels[2]}, &merged)

	enhanced := gocv.NewMat()
	gocv.CvtColor(merged, &enhanced, gocv.ColorLabToBGR)
	return enhanced
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

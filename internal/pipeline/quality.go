package pipeline

import (
	"math"

	"gocv.io/x/gocv"

	"drone-vision-go/internal/models"
)

// ComputeQualityMetrics derives diagnostic image statistics from a decoded BGR
// frame: Laplacian-variance blur score, grayscale brightness mean/std,
// contrast (intensity std) and mean Sobel gradient magnitude as sharpness.
// Pure function of the pixel buffer; the caller keeps ownership of the Mat.
func ComputeQualityMetrics(img gocv.Mat) models.QualityMetrics {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	// Blur detection via variance of the Laplacian response
	laplacian := gocv.NewMat()
	defer laplacian.Close()
	gocv.Laplacian(gray, &laplacian, gocv.MatTypeCV64F, 1, 1, 0, gocv.BorderDefault)

	lapMean := gocv.NewMat()
	defer lapMean.Close()
	lapStd := gocv.NewMat()
	defer lapStd.Close()
	gocv.MeanStdDev(laplacian, &lapMean, &lapStd)
	lapSigma := lapStd.GetDoubleAt(0, 0)

	grayMean := gocv.NewMat()
	defer grayMean.Close()
	grayStd := gocv.NewMat()
	defer grayStd.Close()
	gocv.MeanStdDev(gray, &grayMean, &grayStd)
	brightnessMean := grayMean.GetDoubleAt(0, 0)
	brightnessStd := grayStd.GetDoubleAt(0, 0)

	// Sharpness via mean gradient magnitude
	gradX := gocv.NewMat()
	defer gradX.Close()
	gradY := gocv.NewMat()
	defer gradY.Close()
	gocv.Sobel(gray, &gradX, gocv.MatTypeCV64F, 1, 0, 3, 1, 0, gocv.BorderDefault)
	gocv.Sobel(gray, &gradY, gocv.MatTypeCV64F, 0, 1, 3, 1, 0, gocv.BorderDefault)

	magnitude := gocv.NewMat()
	defer magnitude.Close()
	gocv.Magnitude(gradX, gradY, &magnitude)

	return models.QualityMetrics{
		BlurScore:      round2(lapSigma * lapSigma),
		BrightnessMean: round2(brightnessMean),
		BrightnessStd:  round2(brightnessStd),
		Contrast:       round2(brightnessStd),
		Sharpness:      round2(magnitude.Mean().Val1),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

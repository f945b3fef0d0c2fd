package pipeline

import (
	"encoding/base64"
	"fmt"

	"gocv.io/x/gocv"
)

const thermalJPEGQuality = 85

// RenderThermal produces a heat-map style false-color visualization of the
// frame: grayscale intensity mapped through the JET colormap, encoded as a
// base64 JPEG for transport. The caller keeps ownership of the input Mat.
func RenderThermal(img gocv.Mat) (string, error) {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	thermal := gocv.NewMat()
	defer thermal.Close()
	gocv.ApplyColorMap(gray, &thermal, gocv.ColormapJet)

	encoded, err := encodeJPEGBase64(thermal, thermalJPEGQuality)
	if err != nil {
		return "", fmt.Errorf("failed to encode thermal image: %w", err)
	}
	return encoded, nil
}

// encodeJPEG JPEG-encodes a BGR Mat at the given quality. The bytes are
// copied out of the native encode buffer before it is released.
func encodeJPEG(img gocv.Mat, quality int) ([]byte, error) {
	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, img, []int{gocv.IMWriteJpegQuality, quality})
	if err != nil {
		return nil, err
	}
	defer buf.Close()

	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())
	return data, nil
}

func encodeJPEGBase64(img gocv.Mat, quality int) (string, error) {
	data, err := encodeJPEG(img, quality)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

package report

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
)

const (
	inchToMm    = 25.4
	pdfMarginMm = 0.5 * inchToMm
	ptToMm      = 25.4 / 72.0
)

// WritePDF wraps the rendered PNG figure into a one-page landscape PDF, the
// default figure artifact (the original replaced the data file's extension
// with .pdf). The image is scaled to the content width, preserving the
// figure's aspect ratio.
func WritePDF(path string, png []byte, widthPts, heightPts float64) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*pdfMarginMm
	imgW := widthPts * ptToMm
	imgH := heightPts * ptToMm
	if imgW > contentW {
		imgH = imgH * contentW / imgW
		imgW = contentW
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader("figure", opts, bytes.NewReader(png))
	pdf.ImageOptions("figure", pdfMarginMm, pdfMarginMm, imgW, imgH, false, opts, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", path, err)
	}
	return nil
}

// WritePNG stores the raw rendered figure next to the PDF when --print is
// requested.
func WritePNG(path string, png []byte) error {
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("failed to write PNG %s: %w", path, err)
	}
	return nil
}

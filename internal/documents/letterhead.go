package documents

import (
	"bytes"
	"image"
	"image/png"
	"log"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"

	// register decoders for the formats letterheads come in
	_ "image/gif"
	_ "image/jpeg"
)

// Letterheads wider than this are downscaled before embedding so a large
// upload does not bloat every generated document.
const maxLetterheadPx = 1000

// drawLetterhead stamps the letterhead image centered at the top of the
// current page and returns the vertical shift to apply to the rest of the
// layout. A malformed image is logged and skipped, rendering continues
// unshifted.
func (g *Generator) drawLetterhead(pdf *gofpdf.Fpdf, logo []byte) float64 {
	if len(logo) == 0 {
		return 0
	}

	img, _, err := image.Decode(bytes.NewReader(logo))
	if err != nil {
		log.Printf("letterhead image could not be decoded, rendering without it: %v", err)
		return 0
	}

	if img.Bounds().Dx() > maxLetterheadPx {
		img = imaging.Resize(img, maxLetterheadPx, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Printf("letterhead image could not be re-encoded, rendering without it: %v", err)
		return 0
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("letterhead", opts, &buf)
	if pdf.Err() {
		log.Printf("letterhead image rejected by the renderer, continuing without it: %v", pdf.Error())
		pdf.ClearError()
		return 0
	}

	// keep the aspect ratio inside the fixed width band
	w := g.defaults.LogoWidth
	h := w * float64(img.Bounds().Dy()) / float64(img.Bounds().Dx())
	pageW, _ := pdf.GetPageSize()
	pdf.ImageOptions("letterhead", (pageW-w)/2, 8, w, h, false, opts, 0, "")

	return g.defaults.LogoShift
}

// Package imagex compresses raster images for embedding in notification
// messages: decode, downscale to a bounding dimension, re-encode as JPEG at
// a given quality, and wrap the result in a data URI.
package imagex

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"

	"github.com/dmitrijs2005/caseintake/internal/common"
	"github.com/dmitrijs2005/caseintake/internal/datauri"
)

// Default compression parameters, matching the intake form's behaviour.
const (
	DefaultMaxDimension = 800
	DefaultQuality      = 0.8
)

// Compressed is the result of one compression pass.
type Compressed struct {
	// DataURI is the self-describing encoded payload ("data:image/jpeg;base64,...").
	DataURI string
	// Width and Height are the dimensions of the re-encoded image.
	Width  int
	Height int
	// Size is the compressed payload size in bytes (before base64 expansion).
	Size int64
}

// Compress reads a raster image from r, scales its longer side down to at
// most maxDim (never upscaling, aspect ratio preserved) and re-encodes it
// as JPEG at quality in (0,1].
//
// Input that does not carry a recognizable image signature yields
// common.ErrDecode; callers processing a batch should skip the file and
// continue. No I/O happens beyond reading r.
func Compress(r io.Reader, maxDim int, quality float64) (*Compressed, error) {
	if maxDim <= 0 {
		return nil, fmt.Errorf("imagex: max dimension must be positive, got %d", maxDim)
	}
	if quality <= 0 || quality > 1 {
		return nil, fmt.Errorf("imagex: quality must be in (0,1], got %g", quality)
	}

	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecode, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(int(quality*100))); err != nil {
		return nil, fmt.Errorf("imagex: encode: %w", err)
	}

	out := img.Bounds()
	return &Compressed{
		DataURI: datauri.Encode("image/jpeg", buf.Bytes()),
		Width:   out.Dx(),
		Height:  out.Dy(),
		Size:    int64(buf.Len()),
	}, nil
}

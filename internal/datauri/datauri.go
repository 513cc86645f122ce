// Package datauri encodes and decodes self-describing data URIs of the form
// "data:<media type>;base64,<payload>". Image payloads travel through the
// intake pipeline in this encoding: the compressor produces it, the case
// image store holds it, and the retrieval service decodes it back to bytes.
package datauri

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/caseintake/internal/common"
)

// DefaultMediaType is assumed when a payload carries no usable MIME tag.
const DefaultMediaType = "image/jpeg"

// Encode wraps raw bytes into a base64 data URI tagged with mediaType.
func Encode(mediaType string, data []byte) string {
	if mediaType == "" {
		mediaType = DefaultMediaType
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Decode splits a data URI into its media type and decoded payload.
//
// A missing comma separator or an invalid base64 payload yields
// common.ErrMalformedPayload. A missing or malformed media type is not an
// error: DefaultMediaType is returned instead, so stored images always
// serve with a usable Content-Type.
func Decode(uri string) (string, []byte, error) {
	parts := strings.SplitN(uri, ",", 2)
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("%w: no payload separator", common.ErrMalformedPayload)
	}

	mediaType := mediaTypeFromHeader(parts[0])

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", common.ErrMalformedPayload, err)
	}

	return mediaType, decoded, nil
}

func mediaTypeFromHeader(header string) string {
	meta := strings.TrimPrefix(header, "data:")
	for _, segment := range strings.Split(meta, ";") {
		segment = strings.TrimSpace(segment)
		if strings.Contains(segment, "/") {
			return segment
		}
	}
	return DefaultMediaType
}

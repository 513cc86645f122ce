package datauri

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/caseintake/internal/common"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}

	uri := Encode("image/png", payload)
	assert.True(t, len(uri) > len(payload))

	mediaType, decoded, err := Decode(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mediaType)
	assert.Equal(t, payload, decoded)
}

func TestEncode_EmptyMediaTypeFallsBack(t *testing.T) {
	uri := Encode("", []byte("x"))
	mediaType, _, err := Decode(uri)
	require.NoError(t, err)
	assert.Equal(t, DefaultMediaType, mediaType)
}

func TestDecode_MissingMediaTypeUsesDefault(t *testing.T) {
	uri := "data:;base64," + base64.StdEncoding.EncodeToString([]byte("hello"))

	mediaType, decoded, err := Decode(uri)
	require.NoError(t, err)
	assert.Equal(t, DefaultMediaType, mediaType)
	assert.Equal(t, []byte("hello"), decoded)
}

func TestDecode_NoSeparator(t *testing.T) {
	_, _, err := Decode("data:image/png;base64")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMalformedPayload)
}

func TestDecode_InvalidBase64(t *testing.T) {
	_, _, err := Decode("data:image/png;base64,@@@not-base64@@@")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMalformedPayload)
}

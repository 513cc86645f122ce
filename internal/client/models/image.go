package models

// LocalImage is a photo the user picked, before compression.
type LocalImage struct {
	// Path is the source file location on disk.
	Path string
	// Name is the filename sent to the server.
	Name string
}

// CompressedImage is the client-side compression result for one photo.
// Size is the decoded byte size of the compressed payload, which is also
// the size reported to the user and to the server.
type CompressedImage struct {
	// ID is a local identifier for listing and retries, not sent on the wire.
	ID      string `json:"-"`
	DataURI string `json:"url"`
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Width   int    `json:"-"`
	Height  int    `json:"-"`
}

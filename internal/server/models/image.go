package models

import "time"

// CaseImage is the stored form of one uploaded image, keyed by
// "<caseID>_<index>". The store owns the record exclusively for the
// lifetime of the process; nothing mutates it after Put.
type CaseImage struct {
	// Key is the caller-constructed storage key.
	Key string
	// DataURI is the compressed, self-describing payload.
	DataURI string
	// Name is the original filename, suggested on download.
	Name string
	// Size is the payload size in bytes as reported by the uploader.
	Size int64
	// UploadedAt is set by the store on Put.
	UploadedAt time.Time
}

// ImageDownload is a decoded binary image ready to be served: raw bytes,
// the content type derived from the stored MIME tag, and the filename for
// the attachment disposition.
type ImageDownload struct {
	Data        []byte
	ContentType string
	Name        string
}

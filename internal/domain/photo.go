package domain

const DefaultPhotoContentType = "image/jpeg"

// PhotoMedia is a cached or freshly fetched place photo.
type PhotoMedia struct {
	Body        []byte
	ContentType string
	Hit         bool
}

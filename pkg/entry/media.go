package entry

// MediaType distinguishes how a media reference is rendered.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// ParseMediaType maps anything other than the exact string "video" to an image.
func ParseMediaType(raw string) MediaType {
	if raw == string(MediaVideo) {
		return MediaVideo
	}
	return MediaImage
}

// MediaRef points at an image or video. URL may be remote or a data URL for an
// uploaded image.
type MediaRef struct {
	Type    MediaType `json:"type"`
	URL     string    `json:"url"`
	Caption string    `json:"caption,omitempty"`
}

// IsDataURL reports whether the reference carries its payload inline.
func (m MediaRef) IsDataURL() bool {
	return len(m.URL) >= 5 && m.URL[:5] == "data:"
}

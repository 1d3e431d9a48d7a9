package museum

import (
	"fmt"
	"net/url"
	"strings"
)

// ImageSize is the requested width, in pixels, of a IIIF rendition.
type ImageSize int

const (
	ImageThumbnail ImageSize = 400
	ImageStandard  ImageSize = 843
	ImageHigh      ImageSize = 1686
)

// IIIFImageURL builds {base}/{id}/full/{width},/0/default.jpg. It returns ""
// when imageID is blank.
func IIIFImageURL(base, imageID string, size ImageSize) string {
	imageID = strings.TrimSpace(imageID)
	if imageID == "" {
		return ""
	}
	if size <= 0 {
		size = ImageStandard
	}
	return fmt.Sprintf("%s/%s/full/%d,/0/default.jpg", strings.TrimRight(base, "/"), url.PathEscape(imageID), size)
}

package gallery

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"time"
)

// PublicPathPrefix is where the server mounts the image directory.
const PublicPathPrefix = "/gallery"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// UploadFilename builds a stored filename for an uploaded image: the upload
// timestamp in millis plus the sanitized original name, so two uploads of
// "nails.jpg" never collide.
func UploadFilename(original string) string {
	name := unsafeChars.ReplaceAllString(filepath.Base(original), "-")
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), name)
}

// FileNameFromURL extracts the stored filename from a public image URL.
func FileNameFromURL(imageURL string) string {
	name := path.Base(imageURL)
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return name
}

// RemoveStoredImage deletes the file behind imageURL from dir. A file that is
// already gone is not an error.
func RemoveStoredImage(dir, imageURL string) error {
	name := FileNameFromURL(imageURL)
	if name == "" || name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

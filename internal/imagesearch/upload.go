package imagesearch

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxUploadBytes caps an uploaded preview image.
const MaxUploadBytes = 5 << 20

var (
	ErrTooLarge = errors.New("image exceeds upload limit")
	ErrNotImage = errors.New("uploaded file is not an image")
	ErrEmpty    = errors.New("uploaded file is empty")
)

// EncodeDataURI reads an uploaded file and returns it as a data URI suitable for a product image.
// The MIME type is sniffed from the content, not taken from the client.
func EncodeDataURI(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}
	if len(data) > MaxUploadBytes {
		return "", ErrTooLarge
	}

	mt := mimetype.Detect(data)
	if !isImage(mt) {
		return "", fmt.Errorf("%w: %s", ErrNotImage, mt.String())
	}
	mime := strings.SplitN(mt.String(), ";", 2)[0]
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func isImage(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return true
		}
	}
	return false
}

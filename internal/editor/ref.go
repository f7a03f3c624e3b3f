package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"kedai/internal/domain"
)

var ErrInvalidRef = errors.New("invalid image reference")

type RefKind int

const (
	RefSlot RefKind = iota + 1
	RefGallery
)

// ImageRef addresses one image: a named hero slot or a gallery position.
type ImageRef struct {
	Kind     RefKind
	Slot     string
	Category string
	Index    int
}

func NamedSlot(name string) ImageRef {
	return ImageRef{Kind: RefSlot, Slot: name}
}

func GalleryItem(category string, index int) ImageRef {
	return ImageRef{Kind: RefGallery, Category: category, Index: index}
}

// String renders the form value, e.g. "slot:image2" or "gallery:lingkunganKedai:3".
func (r ImageRef) String() string {
	switch r.Kind {
	case RefSlot:
		return "slot:" + r.Slot
	case RefGallery:
		return fmt.Sprintf("gallery:%s:%d", r.Category, r.Index)
	}
	return ""
}

// ParseImageRef parses the String form. Unknown slots, unknown categories
// and negative or non-numeric indexes are rejected.
func ParseImageRef(s string) (ImageRef, error) {
	parts := strings.Split(s, ":")
	switch {
	case len(parts) == 2 && parts[0] == "slot":
		if !domain.IsImageSlot(parts[1]) {
			return ImageRef{}, fmt.Errorf("%w: unknown slot %q", ErrInvalidRef, parts[1])
		}
		return NamedSlot(parts[1]), nil
	case len(parts) == 3 && parts[0] == "gallery":
		if !domain.IsGalleryCategory(parts[1]) {
			return ImageRef{}, fmt.Errorf("%w: unknown gallery %q", ErrInvalidRef, parts[1])
		}
		idx, err := strconv.Atoi(parts[2])
		if err != nil || idx < 0 {
			return ImageRef{}, fmt.Errorf("%w: bad index %q", ErrInvalidRef, parts[2])
		}
		return GalleryItem(parts[1], idx), nil
	}
	return ImageRef{}, fmt.Errorf("%w: %q", ErrInvalidRef, s)
}

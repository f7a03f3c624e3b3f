package domain

const (
	RoleAdmin = "ADMIN"
)

// Named hero image slots, in display order.
const (
	SlotImage1 = "image1"
	SlotImage2 = "image2"
	SlotImage3 = "image3"
	SlotImage4 = "image4"
)

var ImageSlots = []string{SlotImage1, SlotImage2, SlotImage3, SlotImage4}

// Gallery categories; each holds an ordered list of photos addressed by index.
const (
	GalleryLingkunganKedai = "lingkunganKedai"
	GallerySpotTempatDuduk = "spotTempatDuduk"
)

var GalleryCategories = []string{GalleryLingkunganKedai, GallerySpotTempatDuduk}

// SingletonKey is the unique key of the one About Us row.
const SingletonKey = "about-us"

func IsImageSlot(name string) bool {
	for _, s := range ImageSlots {
		if s == name {
			return true
		}
	}
	return false
}

func IsGalleryCategory(name string) bool {
	for _, g := range GalleryCategories {
		if g == name {
			return true
		}
	}
	return false
}

package models

import (
	"time"

	"kedai/internal/domain"

	"gorm.io/datatypes"
)

// AboutUs is the single "About Us" document rendered on the public site.
// JSON names are shared with stored documents and the admin client. Column
// defaults live in DefaultAboutUs, not in tags: a zero count must persist as 0.
type AboutUs struct {
	ID                 uint          `gorm:"primaryKey" json:"_id,omitempty"`
	Key                string        `gorm:"uniqueIndex;size:64;not null" json:"-"`
	Title              string        `gorm:"size:255;not null" json:"title"`
	Subtitle           string        `gorm:"size:255;not null" json:"subtitle"`
	Description        string        `gorm:"type:text;not null" json:"description"`
	SecondDescription  string        `gorm:"type:text;not null" json:"secondDescription"`
	CompanyDescription string        `gorm:"type:text" json:"companyDescription,omitempty"`
	YearsOfExperience  int           `gorm:"not null" json:"yearsOfExperience"`
	MasterChefs        int           `gorm:"not null" json:"masterChefs"`
	Images             AboutUsImages `gorm:"embedded;embeddedPrefix:images_" json:"images"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

func (AboutUs) TableName() string { return "about_us" }

// AboutUsImages holds four named hero slots and two positional galleries.
// Slot columns carry no size so MySQL maps them to longtext.
type AboutUsImages struct {
	Image1          string                      `json:"image1"`
	Image2          string                      `json:"image2"`
	Image3          string                      `json:"image3"`
	Image4          string                      `json:"image4"`
	LingkunganKedai datatypes.JSONSlice[string] `json:"lingkunganKedai"`
	SpotTempatDuduk datatypes.JSONSlice[string] `json:"spotTempatDuduk"`
}

// Slot returns the value of a named slot and whether the name is known.
func (im *AboutUsImages) Slot(name string) (string, bool) {
	switch name {
	case domain.SlotImage1:
		return im.Image1, true
	case domain.SlotImage2:
		return im.Image2, true
	case domain.SlotImage3:
		return im.Image3, true
	case domain.SlotImage4:
		return im.Image4, true
	}
	return "", false
}

// SetSlot assigns a named slot. Unknown names report false.
func (im *AboutUsImages) SetSlot(name, value string) bool {
	switch name {
	case domain.SlotImage1:
		im.Image1 = value
	case domain.SlotImage2:
		im.Image2 = value
	case domain.SlotImage3:
		im.Image3 = value
	case domain.SlotImage4:
		im.Image4 = value
	default:
		return false
	}
	return true
}

// Gallery returns a pointer to the named gallery, or nil.
func (im *AboutUsImages) Gallery(category string) *datatypes.JSONSlice[string] {
	switch category {
	case domain.GalleryLingkunganKedai:
		return &im.LingkunganKedai
	case domain.GallerySpotTempatDuduk:
		return &im.SpotTempatDuduk
	}
	return nil
}

// Normalize replaces nil galleries with empty ones so they encode as [].
func (im *AboutUsImages) Normalize() {
	if im.LingkunganKedai == nil {
		im.LingkunganKedai = datatypes.JSONSlice[string]{}
	}
	if im.SpotTempatDuduk == nil {
		im.SpotTempatDuduk = datatypes.JSONSlice[string]{}
	}
}

// Clone returns a deep copy; galleries are copied so edits never alias.
func (a *AboutUs) Clone() *AboutUs {
	if a == nil {
		return nil
	}
	out := *a
	out.Images.LingkunganKedai = append(datatypes.JSONSlice[string]{}, a.Images.LingkunganKedai...)
	out.Images.SpotTempatDuduk = append(datatypes.JSONSlice[string]{}, a.Images.SpotTempatDuduk...)
	return &out
}

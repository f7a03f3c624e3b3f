package web

import (
	"kedai/internal/domain"
	"kedai/internal/editor"
)

var slotLabels = map[string]string{
	domain.SlotImage1: "Gambar 1",
	domain.SlotImage2: "Gambar 2",
	domain.SlotImage3: "Gambar 3",
	domain.SlotImage4: "Gambar 4",
}

var galleryTitles = map[string]string{
	domain.GalleryLingkunganKedai: "Lingkungan Kedai",
	domain.GallerySpotTempatDuduk: "Spot Tempat Duduk",
}

// NewAdminAboutData builds the form view from an edit session.
func NewAdminAboutData(s *editor.Session, message, errMsg string) AdminAboutData {
	d := AdminAboutData{
		Title:   "Kelola Tentang Kami",
		Record:  s.Draft(),
		Message: message,
		Error:   errMsg,
	}
	// Slots show the stored value: a staged file only has a preview
	// reference on the server, which a browser cannot load.
	for _, name := range domain.ImageSlots {
		src, _ := s.Draft().Images.Slot(name)
		d.Slots = append(d.Slots, SlotField{
			Name:  name,
			Label: slotLabels[name],
			Src:   src,
		})
	}
	for _, category := range domain.GalleryCategories {
		g := GalleryField{Category: category, Title: galleryTitles[category]}
		for i, src := range *s.Draft().Images.Gallery(category) {
			g.Items = append(g.Items, GalleryItemField{
				Ref:   editor.GalleryItem(category, i).String(),
				Index: i,
				Src:   src,
			})
		}
		d.Galleries = append(d.Galleries, g)
	}
	return d
}

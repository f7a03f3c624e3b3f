// Package display turns the About Us record into a view model for the public page.
package display

import (
	"context"

	"kedai/internal/domain"
	"kedai/internal/models"

	"github.com/charmbracelet/log"
)

type PanelSize string

const (
	Large PanelSize = "large"
	Small PanelSize = "small"
	Wide  PanelSize = "wide"
)

// Placeholder icons shown when a hero position has no image.
const (
	IconChefHat = "ChefHat"
	IconUsers   = "Users"
	IconAward   = "Award"
)

// Panel is one hero position: either an image or a placeholder icon.
type Panel struct {
	Size  PanelSize
	Image string
	Icon  string
}

func (p Panel) Placeholder() bool { return p.Image == "" }

type Gallery struct {
	Category string
	Title    string
	Photos   []string
}

type View struct {
	Title              string
	Subtitle           string
	Description        string
	SecondDescription  string
	CompanyDescription string
	YearsOfExperience  int
	MasterChefs        int
	Panels             []Panel
	Galleries          []Gallery
	Fallback           bool
}

// Fetcher reads the stored record; nil means none exists.
type Fetcher interface {
	Fetch(ctx context.Context) (*models.AboutUs, error)
}

// Load never fails: a missing record renders the long fallback copy and a
// failed fetch the short one.
func Load(ctx context.Context, f Fetcher) View {
	rec, err := f.Fetch(ctx)
	if err != nil {
		log.Warn("about us fetch failed, rendering fallback", "err", err)
		v := Build(models.DisplayFallback(false))
		v.Fallback = true
		return v
	}
	if rec == nil {
		v := Build(models.DisplayFallback(true))
		v.Fallback = true
		return v
	}
	return Build(rec)
}

// Build lays out the record. Non-empty slots are compacted in order: the
// first is large, the next two small and the fourth full width. With no
// images at all three placeholders are shown.
func Build(rec *models.AboutUs) View {
	v := View{
		Title:              rec.Title,
		Subtitle:           rec.Subtitle,
		Description:        rec.Description,
		SecondDescription:  rec.SecondDescription,
		CompanyDescription: rec.CompanyDescription,
		YearsOfExperience:  rec.YearsOfExperience,
		MasterChefs:        rec.MasterChefs,
		Panels:             panels(&rec.Images),
	}
	for _, g := range []struct {
		category, title string
		photos          []string
	}{
		{domain.GalleryLingkunganKedai, "Lingkungan Kedai", rec.Images.LingkunganKedai},
		{domain.GallerySpotTempatDuduk, "Spot Tempat Duduk", rec.Images.SpotTempatDuduk},
	} {
		if len(g.photos) == 0 {
			continue
		}
		v.Galleries = append(v.Galleries, Gallery{
			Category: g.category,
			Title:    g.title,
			Photos:   append([]string(nil), g.photos...),
		})
	}
	return v
}

func panels(im *models.AboutUsImages) []Panel {
	var imgs []string
	for _, s := range []string{im.Image1, im.Image2, im.Image3, im.Image4} {
		if s != "" {
			imgs = append(imgs, s)
		}
	}
	at := func(i int) string {
		if i < len(imgs) {
			return imgs[i]
		}
		return ""
	}
	out := []Panel{
		{Size: Large, Image: at(0), Icon: IconChefHat},
		{Size: Small, Image: at(1), Icon: IconUsers},
		{Size: Small, Image: at(2), Icon: IconAward},
	}
	if len(imgs) > 3 {
		out = append(out, Panel{Size: Wide, Image: imgs[3]})
	}
	return out
}

package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"kedai/internal/models"
	"kedai/pkg/datauri"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// AboutUsStore is the persistence the service writes through.
type AboutUsStore interface {
	Get(ctx context.Context) (*models.AboutUs, error)
	Replace(ctx context.Context, a *models.AboutUs) (*models.AboutUs, error)
}

// ImageUploader moves inline images to object storage and removes the ones a
// save no longer references.
type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error)
	DeleteByURL(ctx context.Context, url string) error
}

// UpdateNotifier is told about every successful save.
type UpdateNotifier interface {
	AboutUsUpdated(a *models.AboutUs)
}

type AboutUsService struct {
	store    AboutUsStore
	uploader ImageUploader
	folder   string
	notifier UpdateNotifier
}

type Option func(*AboutUsService)

// WithImageOffload uploads data URI images on save and stores the returned URL.
func WithImageOffload(u ImageUploader, folder string) Option {
	return func(s *AboutUsService) {
		s.uploader = u
		s.folder = folder
	}
}

func WithNotifier(n UpdateNotifier) Option {
	return func(s *AboutUsService) { s.notifier = n }
}

func NewAboutUsService(store AboutUsStore, opts ...Option) *AboutUsService {
	s := &AboutUsService{store: store}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Fetch returns the current record or nil when none exists.
func (s *AboutUsService) Fetch(ctx context.Context) (*models.AboutUs, error) {
	a, err := s.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load about us: %w", err)
	}
	return a, nil
}

// Replace validates and stores a full replacement document.
func (s *AboutUsService) Replace(ctx context.Context, in *models.AboutUs) (*models.AboutUs, error) {
	a := in.Clone()
	a.Normalize()
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if s.uploader == nil {
		return s.save(ctx, a)
	}

	uploaded, err := s.offload(ctx, &a.Images)
	if err != nil {
		s.discard(ctx, uploaded)
		return nil, err
	}
	prev, err := s.store.Get(ctx)
	if err != nil {
		log.Warn("load previous about us, skipping orphan cleanup", "err", err)
	}
	saved, err := s.save(ctx, a)
	if err != nil {
		s.discard(ctx, uploaded)
		return nil, err
	}
	if prev != nil {
		s.deleteOrphans(ctx, &prev.Images, &saved.Images)
	}
	return saved, nil
}

func (s *AboutUsService) save(ctx context.Context, a *models.AboutUs) (*models.AboutUs, error) {
	saved, err := s.store.Replace(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("save about us: %w", err)
	}
	log.Info("about us saved", "id", saved.ID, "updated_at", saved.UpdatedAt)
	if s.notifier != nil {
		s.notifier.AboutUsUpdated(saved)
	}
	return saved, nil
}

// offload replaces data URIs with uploaded URLs and returns what it uploaded,
// including on error, so the caller can remove them.
func (s *AboutUsService) offload(ctx context.Context, im *models.AboutUsImages) ([]string, error) {
	var uploaded []string
	upload := func(v string) (string, error) {
		if !datauri.IsDataURI(v) {
			return v, nil
		}
		_, data, err := datauri.Decode(v)
		if err != nil {
			return "", err
		}
		publicID := "img_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
		url, err := s.uploader.UploadImage(ctx, bytes.NewReader(data), s.folder, publicID)
		if err != nil {
			return "", err
		}
		uploaded = append(uploaded, url)
		return url, nil
	}
	for _, slot := range []*string{&im.Image1, &im.Image2, &im.Image3, &im.Image4} {
		url, err := upload(*slot)
		if err != nil {
			return uploaded, fmt.Errorf("upload image: %w", err)
		}
		*slot = url
	}
	for _, g := range []*[]string{(*[]string)(&im.LingkunganKedai), (*[]string)(&im.SpotTempatDuduk)} {
		for i, v := range *g {
			url, err := upload(v)
			if err != nil {
				return uploaded, fmt.Errorf("upload gallery image: %w", err)
			}
			(*g)[i] = url
		}
	}
	return uploaded, nil
}

// discard removes uploads made for a save that did not go through.
func (s *AboutUsService) discard(ctx context.Context, urls []string) {
	for _, u := range urls {
		if err := s.uploader.DeleteByURL(ctx, u); err != nil {
			log.Warn("delete unsaved upload", "url", u, "err", err)
		}
	}
}

// deleteOrphans removes uploaded images the new document dropped. Failures
// are logged; the save has already succeeded.
func (s *AboutUsService) deleteOrphans(ctx context.Context, before, after *models.AboutUsImages) {
	keep := map[string]bool{}
	for _, u := range imageURLs(after) {
		keep[u] = true
	}
	for _, u := range imageURLs(before) {
		if keep[u] || datauri.IsDataURI(u) {
			continue
		}
		if err := s.uploader.DeleteByURL(ctx, u); err != nil {
			log.Warn("delete orphaned image", "url", u, "err", err)
		}
	}
}

func imageURLs(im *models.AboutUsImages) []string {
	var out []string
	for _, v := range []string{im.Image1, im.Image2, im.Image3, im.Image4} {
		if v != "" {
			out = append(out, v)
		}
	}
	out = append(out, im.LingkunganKedai...)
	return append(out, im.SpotTempatDuduk...)
}

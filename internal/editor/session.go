// Package editor holds the admin edit session for the About Us document.
// Edits are applied to a draft; slot images are staged and only encoded
// and committed when the whole document is submitted.
package editor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"kedai/internal/domain"
	"kedai/internal/models"
	"kedai/pkg/datauri"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var (
	ErrAddImage     = errors.New(domain.MsgAddImageFailed)
	ErrOutOfRange   = errors.New("gallery index out of range")
	ErrUnknownField = errors.New("unknown field")
)

// Store reads and replaces the persisted document.
type Store interface {
	Fetch(ctx context.Context) (*models.AboutUs, error)
	Replace(ctx context.Context, a *models.AboutUs) (*models.AboutUs, error)
}

// SubmitError is the single message shown to the admin when a save fails.
type SubmitError struct {
	Message string
	Err     error
}

func (e *SubmitError) Error() string { return e.Message }
func (e *SubmitError) Unwrap() error { return e.Err }

type staged struct {
	file    File
	preview string
}

type Session struct {
	store   Store
	draft   *models.AboutUs
	pending map[string]staged
}

// Load starts a session from the stored document. A missing document
// starts from the admin fallback; so does a failed fetch, in which case the
// error is returned alongside a usable session.
func Load(ctx context.Context, store Store) (*Session, error) {
	s := &Session{store: store, pending: map[string]staged{}}
	rec, err := store.Fetch(ctx)
	if err != nil {
		log.Warn("about us fetch failed, using fallback", "err", err)
		s.draft = models.AdminFallback()
		return s, err
	}
	if rec == nil {
		s.draft = models.AdminFallback()
		return s, nil
	}
	s.draft = rec.Clone()
	s.draft.Images.Normalize()
	return s, nil
}

// Draft is the working document. Callers may edit it directly.
func (s *Session) Draft() *models.AboutUs { return s.draft }

func (s *Session) SetText(field, value string) error {
	switch field {
	case "title":
		s.draft.Title = value
	case "subtitle":
		s.draft.Subtitle = value
	case "description":
		s.draft.Description = value
	case "secondDescription":
		s.draft.SecondDescription = value
	case "companyDescription":
		s.draft.CompanyDescription = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

func (s *Session) SetNumber(field string, n int) error {
	switch field {
	case "yearsOfExperience":
		s.draft.YearsOfExperience = n
	case "masterChefs":
		s.draft.MasterChefs = n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// StageImage keeps a file for a named slot until Submit. Staging again
// replaces the earlier file and its preview.
func (s *Session) StageImage(slot string, f File) error {
	if !domain.IsImageSlot(slot) {
		return fmt.Errorf("%w: unknown slot %q", ErrInvalidRef, slot)
	}
	s.pending[slot] = staged{file: f, preview: "blob:" + uuid.NewString()}
	return nil
}

// Pending reports whether a slot has a staged file.
func (s *Session) Pending(slot string) bool {
	_, ok := s.pending[slot]
	return ok
}

// Preview returns the staged file's preview reference, else the committed value.
func (s *Session) Preview(slot string) string {
	if p, ok := s.pending[slot]; ok {
		return p.preview
	}
	v, _ := s.draft.Images.Slot(slot)
	return v
}

// Remove clears a slot (committed and staged) or splices one gallery item out.
func (s *Session) Remove(ref ImageRef) error {
	return s.RemoveAll(ref)
}

// RemoveAll removes several images at once. Gallery removals are applied per
// category from the highest index down so earlier positions stay valid.
// Nothing is removed if any reference is invalid.
func (s *Session) RemoveAll(refs ...ImageRef) error {
	var slots []string
	byCategory := map[string][]int{}
	for _, r := range refs {
		switch r.Kind {
		case RefSlot:
			if !domain.IsImageSlot(r.Slot) {
				return fmt.Errorf("%w: unknown slot %q", ErrInvalidRef, r.Slot)
			}
			slots = append(slots, r.Slot)
		case RefGallery:
			g := s.draft.Images.Gallery(r.Category)
			if g == nil {
				return fmt.Errorf("%w: unknown gallery %q", ErrInvalidRef, r.Category)
			}
			if r.Index < 0 || r.Index >= len(*g) {
				return fmt.Errorf("%w: %s[%d]", ErrOutOfRange, r.Category, r.Index)
			}
			byCategory[r.Category] = append(byCategory[r.Category], r.Index)
		default:
			return ErrInvalidRef
		}
	}

	for _, slot := range slots {
		s.draft.Images.SetSlot(slot, "")
		delete(s.pending, slot)
	}
	for category, idxs := range byCategory {
		sort.Sort(sort.Reverse(sort.IntSlice(idxs)))
		g := s.draft.Images.Gallery(category)
		last := -1
		for _, i := range idxs {
			if i == last {
				continue
			}
			*g = append((*g)[:i:i], (*g)[i+1:]...)
			last = i
		}
	}
	return nil
}

// AddGalleryImage encodes f right away and appends it to the category.
func (s *Session) AddGalleryImage(category string, f File) error {
	g := s.draft.Images.Gallery(category)
	if g == nil {
		return fmt.Errorf("%w: unknown gallery %q", ErrInvalidRef, category)
	}
	uri, err := encode(f)
	if err != nil {
		log.Warn("gallery image rejected", "category", category, "file", f.Name, "err", err)
		return fmt.Errorf("%w: %v", ErrAddImage, err)
	}
	*g = append(*g, uri)
	return nil
}

// Submit validates the draft, encodes staged slot files and replaces the
// stored document. On success the draft becomes the stored document and
// staged files are dropped. On failure the draft and staged files are kept.
func (s *Session) Submit(ctx context.Context) (*models.AboutUs, error) {
	out := s.draft.Clone()
	out.Normalize()
	if err := out.Validate(); err != nil {
		return nil, &SubmitError{Message: err.Error(), Err: err}
	}

	for _, slot := range domain.ImageSlots {
		p, ok := s.pending[slot]
		if !ok {
			continue
		}
		uri, err := encode(p.file)
		if err != nil {
			return nil, &SubmitError{Message: fmt.Sprintf("failed to encode %s: %v", slot, err), Err: err}
		}
		out.Images.SetSlot(slot, uri)
	}

	saved, err := s.store.Replace(ctx, out)
	if err != nil {
		msg := strings.TrimSpace(err.Error())
		if msg == "" {
			msg = domain.MsgGenericFailure
		}
		return nil, &SubmitError{Message: msg, Err: err}
	}
	if saved == nil {
		saved = out
	}
	s.draft = saved.Clone()
	s.draft.Images.Normalize()
	s.pending = map[string]staged{}
	return s.draft, nil
}

func encode(f File) (string, error) {
	if f.Open == nil {
		return "", datauri.ErrEmpty
	}
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return datauri.EncodeImage(rc)
}

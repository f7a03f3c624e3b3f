package repository

import (
	"context"
	"errors"

	"kedai/internal/domain"
	"kedai/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AboutUsRepository struct {
	db *gorm.DB
}

func NewAboutUsRepository(db *gorm.DB) *AboutUsRepository {
	return &AboutUsRepository{db: db}
}

// Get returns the stored record, or nil when none has been written yet.
func (r *AboutUsRepository) Get(ctx context.Context) (*models.AboutUs, error) {
	return get(r.db.WithContext(ctx))
}

// Replace overwrites the singleton record wholesale, creating it on first
// write. CreatedAt of an existing row is preserved.
func (r *AboutUsRepository) Replace(ctx context.Context, a *models.AboutUs) (*models.AboutUs, error) {
	row := a.Clone()
	row.ID = 0
	row.Key = domain.SingletonKey
	row.Images.Normalize()

	var saved *models.AboutUs
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).Create(row).Error
		if err != nil {
			return err
		}
		saved, err = get(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func get(db *gorm.DB) (*models.AboutUs, error) {
	var a models.AboutUs
	err := db.Where(map[string]any{"key": domain.SingletonKey}).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.Images.Normalize()
	return &a, nil
}

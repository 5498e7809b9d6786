package repositories

import (
	"errors"

	"tiny-cms/models"

	"gorm.io/gorm"
)

type ThemeRepository interface {
	GetLatest() (*models.Theme, error)
	Create(theme *models.Theme) error
	Update(theme *models.Theme) error
}

type themeRepository struct {
	db *gorm.DB
}

func NewThemeRepository(db *gorm.DB) ThemeRepository {
	return &themeRepository{db: db}
}

// GetLatest returns the singleton theme row, or nil if none exists yet.
func (r *themeRepository) GetLatest() (*models.Theme, error) {
	var theme models.Theme
	err := r.db.Order("updated_at desc").First(&theme).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

func (r *themeRepository) Create(theme *models.Theme) error {
	return r.db.Create(theme).Error
}

func (r *themeRepository) Update(theme *models.Theme) error {
	return r.db.Save(theme).Error
}

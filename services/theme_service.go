package services

import (
	"strings"

	"tiny-cms/models"
	"tiny-cms/policy"
	"tiny-cms/repositories"

	"gorm.io/gorm"
)

// ThemeService manages the singleton site theme. Reads are public; updates
// are restricted to maintainers and owners.
type ThemeService interface {
	GetTheme() (*models.Theme, error)
	UpdateTheme(actor models.Actor, req models.UpdateThemeRequest) (*models.Theme, error)
}

type themeService struct {
	db *gorm.DB
}

func NewThemeService(db *gorm.DB) ThemeService {
	return &themeService{db: db}
}

// GetTheme returns the singleton theme, creating the default row on first use.
func (s *themeService) GetTheme() (*models.Theme, error) {
	return s.getOrCreate(s.db)
}

func (s *themeService) UpdateTheme(actor models.Actor, req models.UpdateThemeRequest) (*models.Theme, error) {
	if !policy.CanApproveOrPublish(actor.Role) {
		return nil, models.ErrorForbidden{Message: "maintainer or owner only"}
	}

	var theme *models.Theme
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		theme, err = s.getOrCreate(tx)
		if err != nil {
			return err
		}

		changed := false
		if req.Preset != nil {
			if preset := strings.TrimSpace(*req.Preset); preset != "" {
				theme.Preset = preset
				changed = true
			}
		}
		if req.Overrides != nil {
			theme.Overrides = *req.Overrides
			changed = true
		}
		if !changed {
			return nil
		}

		if err := repositories.NewThemeRepository(tx).Update(theme); err != nil {
			return err
		}

		return repositories.NewAuditRepository(tx).Create(&models.AuditLog{
			UserID:       actor.ID,
			Action:       models.AuditThemeUpdated,
			ResourceType: "theme",
			Metadata:     models.AuditMetadata{"preset": theme.Preset},
		})
	})
	if err != nil {
		return nil, err
	}
	return theme, nil
}

func (s *themeService) getOrCreate(db *gorm.DB) (*models.Theme, error) {
	themeRepo := repositories.NewThemeRepository(db)

	theme, err := themeRepo.GetLatest()
	if err != nil {
		return nil, err
	}
	if theme != nil {
		return theme, nil
	}

	theme = &models.Theme{
		Preset:    models.DefaultThemePreset,
		Overrides: models.ThemeOverrides{},
	}
	if err := themeRepo.Create(theme); err != nil {
		return nil, err
	}
	return theme, nil
}

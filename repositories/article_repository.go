package repositories

import (
	"tiny-cms/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetBySlug(slug string) (*models.Article, error)
	GetList(creatorID uint) ([]models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	GetPublishedBySlug(slug string) (*models.Article, error)
	GetPublishedList() ([]models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("slug = ?", slug).
		Preload("Creator").
		Preload("PublishApprovedBy").
		First(&article).Error
	return &article, err
}

// GetList returns articles newest-updated first. A non-zero creatorID narrows
// the set to that creator (contributor scoping).
func (r *articleRepository) GetList(creatorID uint) ([]models.Article, error) {
	var articles []models.Article
	query := r.db.Model(&models.Article{}).Preload("Creator")
	if creatorID > 0 {
		query = query.Where("creator_id = ?", creatorID)
	}
	err := query.Order("updated_at desc").Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

func (r *articleRepository) GetPublishedBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("slug = ? AND status = ?", slug, models.StatusPublished).
		First(&article).Error
	return &article, err
}

func (r *articleRepository) GetPublishedList() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("status = ?", models.StatusPublished).
		Order("updated_at desc").
		Find(&articles).Error
	return articles, err
}

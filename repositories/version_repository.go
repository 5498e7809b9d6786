package repositories

import (
	"errors"

	"tiny-cms/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VersionRepository is the append-only version store. Every append creates a
// fresh immutable content row; prior versions are never touched. "Current" is
// defined by the per-article Seq, not by timestamps, so fast successive writes
// stay deterministically ordered.
//
// Methods run on whatever handle the repository was constructed with, so a
// service can build one over an open transaction and get all-or-nothing
// behavior per call.
type VersionRepository interface {
	CurrentDraft(articleID uint) (*models.ArticleVersion, error)
	CurrentPublished(articleID uint) (*models.ArticleVersion, error)
	AppendDraft(articleID uint, body models.DocumentNode, actorID uint) (*models.ArticleVersion, error)
	AppendPublished(articleID uint, body models.DocumentNode, actorID uint) (*models.ArticleVersion, error)
	DeleteByArticleID(articleID uint) error
}

type versionRepository struct {
	db *gorm.DB
}

func NewVersionRepository(db *gorm.DB) VersionRepository {
	return &versionRepository{db: db}
}

func (r *versionRepository) CurrentDraft(articleID uint) (*models.ArticleVersion, error) {
	return r.current(articleID, models.KindDraft)
}

func (r *versionRepository) CurrentPublished(articleID uint) (*models.ArticleVersion, error) {
	return r.current(articleID, models.KindPublished)
}

func (r *versionRepository) current(articleID uint, kind models.VersionKind) (*models.ArticleVersion, error) {
	var version models.ArticleVersion
	err := r.db.Where("article_id = ? AND kind = ?", articleID, kind).
		Order("seq desc, id desc").
		Preload("Content").
		First(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &version, nil
}

func (r *versionRepository) AppendDraft(articleID uint, body models.DocumentNode, actorID uint) (*models.ArticleVersion, error) {
	return r.append(articleID, models.KindDraft, body, actorID)
}

func (r *versionRepository) AppendPublished(articleID uint, body models.DocumentNode, actorID uint) (*models.ArticleVersion, error) {
	return r.append(articleID, models.KindPublished, body, actorID)
}

func (r *versionRepository) append(articleID uint, kind models.VersionKind, body models.DocumentNode, actorID uint) (*models.ArticleVersion, error) {
	content := &models.Content{
		ID:   uuid.NewString(),
		Body: body,
	}
	if err := r.db.Create(content).Error; err != nil {
		return nil, err
	}

	var maxSeq int
	err := r.db.Model(&models.ArticleVersion{}).
		Where("article_id = ?", articleID).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&maxSeq).Error
	if err != nil {
		return nil, err
	}

	version := &models.ArticleVersion{
		ArticleID:   articleID,
		Kind:        kind,
		Seq:         maxSeq + 1,
		ContentID:   content.ID,
		UpdatedByID: actorID,
	}
	if err := r.db.Create(version).Error; err != nil {
		// A concurrent append won the same Seq; the unique index on
		// (article_id, seq) turns the race into a retryable conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "article was modified concurrently, retry the write"}
		}
		return nil, err
	}

	version.Content = content
	return version, nil
}

func (r *versionRepository) DeleteByArticleID(articleID uint) error {
	var contentIDs []string
	err := r.db.Model(&models.ArticleVersion{}).
		Where("article_id = ?", articleID).
		Pluck("content_id", &contentIDs).Error
	if err != nil {
		return err
	}

	if err := r.db.Where("article_id = ?", articleID).Delete(&models.ArticleVersion{}).Error; err != nil {
		return err
	}

	if len(contentIDs) > 0 {
		if err := r.db.Where("id IN ?", contentIDs).Delete(&models.Content{}).Error; err != nil {
			return err
		}
	}

	return nil
}

package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"tiny-cms/models"
	"tiny-cms/policy"
	"tiny-cms/repositories"

	"gorm.io/gorm"
)

// ArticleService owns the article lifecycle: draft → draft+approved →
// published. Edits are legal in any state and never change status or clear
// the approval mark (publishing again is what surfaces post-publish edits).
// Every mutation runs in a single transaction so concurrent readers observe
// each operation as a whole, in particular the three-step publish.
type ArticleService interface {
	Create(actor models.Actor, req models.CreateArticleRequest) (*models.ArticleResponse, error)
	Get(actor models.Actor, slug string) (*models.ArticleResponse, error)
	List(actor models.Actor) ([]models.Article, error)
	Update(actor models.Actor, slug string, req models.UpdateArticleRequest) (*models.ArticleResponse, error)
	Approve(actor models.Actor, slug string) (*models.Article, error)
	Publish(actor models.Actor, slug string) (*models.Article, error)
	Delete(actor models.Actor, slug string) error
	GetPublished(slug string) (*models.PublicArticleResponse, error)
	ListPublished() ([]models.PublicArticleListItem, error)
}

type articleService struct {
	db *gorm.DB
}

// NewArticleService builds the workflow engine over a database handle. Repos
// are constructed per operation so mutations can scope them to an open
// transaction.
func NewArticleService(db *gorm.DB) ArticleService {
	return &articleService{db: db}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeSlug trims, lowercases and collapses internal whitespace to single
// hyphens. Uniqueness is checked against the normalized form.
func NormalizeSlug(slug string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(slug)), "-")
}

func (s *articleService) Create(actor models.Actor, req models.CreateArticleRequest) (*models.ArticleResponse, error) {
	slug := NormalizeSlug(req.Slug)
	title := strings.TrimSpace(req.Title)
	if slug == "" || title == "" {
		return nil, models.ErrorValidation{Message: "slug and title are required"}
	}

	body := models.EmptyDocument()
	if req.Body != nil && !req.Body.IsZero() {
		body = *req.Body
	}

	var article *models.Article
	err := s.db.Transaction(func(tx *gorm.DB) error {
		articleRepo := repositories.NewArticleRepository(tx)
		versionRepo := repositories.NewVersionRepository(tx)

		// Pre-check is a courtesy; the unique index is the real guard against
		// the slug race.
		if _, err := articleRepo.GetBySlug(slug); err == nil {
			return models.ErrorConflict{Message: "an article with this slug already exists"}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		article = &models.Article{
			Slug:      slug,
			Title:     title,
			Status:    models.StatusDraft,
			CreatorID: actor.ID,
		}
		if err := articleRepo.Create(article); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.ErrorConflict{Message: "an article with this slug already exists"}
			}
			return err
		}

		if _, err := versionRepo.AppendDraft(article.ID, body, actor.ID); err != nil {
			return err
		}

		return s.audit(tx, actor.ID, models.AuditArticleCreated, article, nil)
	})
	if err != nil {
		return nil, err
	}

	// Reload so the creator association comes back populated.
	article, err = s.getBySlug(s.db, slug)
	if err != nil {
		return nil, err
	}

	return &models.ArticleResponse{Article: *article, Body: body}, nil
}

func (s *articleService) Get(actor models.Actor, slug string) (*models.ArticleResponse, error) {
	article, err := s.getBySlug(s.db, slug)
	if err != nil {
		return nil, err
	}
	if !policy.CanEdit(actor.Role, actor.ID, article.CreatorID) {
		return nil, models.ErrorForbidden{Message: "you may not access this article"}
	}

	draft, err := repositories.NewVersionRepository(s.db).CurrentDraft(article.ID)
	if err != nil {
		return nil, err
	}

	body := models.EmptyDocument()
	if draft != nil && draft.Content != nil {
		body = draft.Content.Body
	}

	return &models.ArticleResponse{Article: *article, Body: body}, nil
}

func (s *articleService) List(actor models.Actor) ([]models.Article, error) {
	var creatorID uint
	if policy.ScopedToCreator(actor.Role) {
		creatorID = actor.ID
	}
	return repositories.NewArticleRepository(s.db).GetList(creatorID)
}

func (s *articleService) Update(actor models.Actor, slug string, req models.UpdateArticleRequest) (*models.ArticleResponse, error) {
	var response *models.ArticleResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		articleRepo := repositories.NewArticleRepository(tx)
		versionRepo := repositories.NewVersionRepository(tx)

		article, err := s.getBySlug(tx, slug)
		if err != nil {
			return err
		}
		if !policy.CanEdit(actor.Role, actor.ID, article.CreatorID) {
			return models.ErrorForbidden{Message: "you may not edit this article"}
		}

		// Titles live on the article row and are not versioned.
		if req.Title != nil {
			if title := strings.TrimSpace(*req.Title); title != "" {
				article.Title = title
				if err := articleRepo.Update(article); err != nil {
					return err
				}
			}
		}

		// A body edit appends a new draft snapshot; prior versions and the
		// approval mark stay untouched.
		if req.Body != nil {
			if _, err := versionRepo.AppendDraft(article.ID, *req.Body, actor.ID); err != nil {
				return err
			}
		}

		draft, err := versionRepo.CurrentDraft(article.ID)
		if err != nil {
			return err
		}
		body := models.EmptyDocument()
		if draft != nil && draft.Content != nil {
			body = draft.Content.Body
		}

		response = &models.ArticleResponse{Article: *article, Body: body}
		return s.audit(tx, actor.ID, models.AuditArticleUpdated, article, models.AuditMetadata{
			"title_changed": req.Title != nil,
			"body_changed":  req.Body != nil,
		})
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Approve sets the publish approval mark. Re-approving simply overwrites the
// mark with the latest actor and time.
func (s *articleService) Approve(actor models.Actor, slug string) (*models.Article, error) {
	if !policy.CanApproveOrPublish(actor.Role) {
		return nil, models.ErrorForbidden{Message: "maintainer or owner only"}
	}

	var article *models.Article
	err := s.db.Transaction(func(tx *gorm.DB) error {
		articleRepo := repositories.NewArticleRepository(tx)

		var err error
		article, err = s.getBySlug(tx, slug)
		if err != nil {
			return err
		}

		article.SetApproval(actor.ID, time.Now())
		if err := articleRepo.Update(article); err != nil {
			return err
		}

		if err := s.audit(tx, actor.ID, models.AuditArticleApproved, article, nil); err != nil {
			return err
		}

		// Reload so the approver association comes back populated.
		article, err = articleRepo.GetBySlug(slug)
		return err
	})
	if err != nil {
		return nil, err
	}
	return article, nil
}

// Publish promotes the current draft snapshot to the public one: it copies
// the draft body by value into a fresh published version, then flips the
// article status. All inside one transaction, so no reader ever sees a
// published article without its published version or the reverse.
func (s *articleService) Publish(actor models.Actor, slug string) (*models.Article, error) {
	if !policy.CanApproveOrPublish(actor.Role) {
		return nil, models.ErrorForbidden{Message: "maintainer or owner only"}
	}

	var article *models.Article
	err := s.db.Transaction(func(tx *gorm.DB) error {
		articleRepo := repositories.NewArticleRepository(tx)
		versionRepo := repositories.NewVersionRepository(tx)

		var err error
		article, err = s.getBySlug(tx, slug)
		if err != nil {
			return err
		}

		if !article.Approved() {
			return models.ErrorPreconditionFailed{Message: "article must be approved before publishing"}
		}

		draft, err := versionRepo.CurrentDraft(article.ID)
		if err != nil {
			return err
		}
		if draft == nil || draft.Content == nil {
			return models.ErrorInvalidState{Message: "article has no draft content to publish"}
		}

		if _, err := versionRepo.AppendPublished(article.ID, draft.Content.Body, actor.ID); err != nil {
			return err
		}

		article.Status = models.StatusPublished
		if err := articleRepo.Update(article); err != nil {
			return err
		}

		return s.audit(tx, actor.ID, models.AuditArticlePublished, article, nil)
	})
	if err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) Delete(actor models.Actor, slug string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		articleRepo := repositories.NewArticleRepository(tx)
		versionRepo := repositories.NewVersionRepository(tx)

		article, err := s.getBySlug(tx, slug)
		if err != nil {
			return err
		}
		if !policy.CanEdit(actor.Role, actor.ID, article.CreatorID) {
			return models.ErrorForbidden{Message: "you may not delete this article"}
		}

		if err := versionRepo.DeleteByArticleID(article.ID); err != nil {
			return err
		}
		if err := articleRepo.Delete(article.ID); err != nil {
			return err
		}

		return s.audit(tx, actor.ID, models.AuditArticleDeleted, article, nil)
	})
}

// GetPublished serves the public read path. It bypasses the workflow and
// reads only materialized published state.
func (s *articleService) GetPublished(slug string) (*models.PublicArticleResponse, error) {
	article, err := repositories.NewArticleRepository(s.db).GetPublishedBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}

	published, err := repositories.NewVersionRepository(s.db).CurrentPublished(article.ID)
	if err != nil {
		return nil, err
	}

	body := models.EmptyDocument()
	if published != nil && published.Content != nil {
		body = published.Content.Body
	}

	return &models.PublicArticleResponse{
		Slug:      article.Slug,
		Title:     article.Title,
		Body:      body,
		UpdatedAt: article.UpdatedAt,
	}, nil
}

func (s *articleService) ListPublished() ([]models.PublicArticleListItem, error) {
	articles, err := repositories.NewArticleRepository(s.db).GetPublishedList()
	if err != nil {
		return nil, err
	}

	items := make([]models.PublicArticleListItem, 0, len(articles))
	for _, article := range articles {
		items = append(items, models.PublicArticleListItem{
			Slug:      article.Slug,
			Title:     article.Title,
			UpdatedAt: article.UpdatedAt,
		})
	}
	return items, nil
}

func (s *articleService) getBySlug(db *gorm.DB, slug string) (*models.Article, error) {
	article, err := repositories.NewArticleRepository(db).GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) audit(tx *gorm.DB, actorID uint, action models.AuditAction, article *models.Article, metadata models.AuditMetadata) error {
	return repositories.NewAuditRepository(tx).Create(&models.AuditLog{
		UserID:       actorID,
		Action:       action,
		ResourceType: "article",
		ResourceID:   article.Slug,
		Metadata:     metadata,
	})
}

package repositories_test

import (
	"testing"

	"tiny-cms/config"
	"tiny-cms/models"
	"tiny-cms/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func seedArticle(t *testing.T, db *gorm.DB, slug string) (models.Article, models.User) {
	t.Helper()
	user := models.User{Email: slug + "@example.com", Password: "x", Role: models.RoleContributor}
	require.NoError(t, db.Create(&user).Error)
	article := models.Article{Slug: slug, Title: slug, Status: models.StatusDraft, CreatorID: user.ID}
	require.NoError(t, db.Create(&article).Error)
	return article, user
}

func body(text string) models.DocumentNode {
	return models.DocumentNode{
		Type: "doc",
		Content: []models.DocumentNode{
			{Type: "paragraph", Content: []models.DocumentNode{{Type: "text", Text: text}}},
		},
	}
}

func TestAppendAssignsMonotonicSeq(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewVersionRepository(db)
	article, user := seedArticle(t, db, "seq-order")

	first, err := repo.AppendDraft(article.ID, body("one"), user.ID)
	require.NoError(t, err)
	second, err := repo.AppendDraft(article.ID, body("two"), user.ID)
	require.NoError(t, err)
	published, err := repo.AppendPublished(article.ID, body("two"), user.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, 2, second.Seq)
	assert.Equal(t, 3, published.Seq)

	draft, err := repo.CurrentDraft(article.ID)
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, second.ID, draft.ID)
}

func TestSeqIsUniquePerArticle(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewVersionRepository(db)
	article, user := seedArticle(t, db, "seq-unique")

	existing, err := repo.AppendDraft(article.ID, body("one"), user.ID)
	require.NoError(t, err)

	// A write that lost the append race arrives with an already-taken Seq;
	// the (article_id, seq) index must reject it.
	content := models.Content{ID: uuid.NewString(), Body: body("late")}
	require.NoError(t, db.Create(&content).Error)
	duplicate := models.ArticleVersion{
		ArticleID:   article.ID,
		Kind:        models.KindDraft,
		Seq:         existing.Seq,
		ContentID:   content.ID,
		UpdatedByID: user.ID,
	}
	err = db.Create(&duplicate).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// The same Seq on a different article is fine.
	other, otherUser := seedArticle(t, db, "seq-unique-other")
	version, err := repo.AppendDraft(other.ID, body("one"), otherUser.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.Seq, version.Seq)
}

func TestDeleteByArticleIDRemovesSnapshots(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewVersionRepository(db)
	article, user := seedArticle(t, db, "seq-delete")

	_, err := repo.AppendDraft(article.ID, body("one"), user.ID)
	require.NoError(t, err)
	_, err = repo.AppendPublished(article.ID, body("one"), user.ID)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByArticleID(article.ID))

	var versions, contents int64
	require.NoError(t, db.Model(&models.ArticleVersion{}).Where("article_id = ?", article.ID).Count(&versions).Error)
	require.NoError(t, db.Model(&models.Content{}).Count(&contents).Error)
	assert.Zero(t, versions)
	assert.Zero(t, contents)
}

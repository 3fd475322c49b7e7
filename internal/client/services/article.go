package services

import (
	"context"
	"fmt"

	"github.com/cczzHoward/article-cli/internal/client/api"
	"github.com/cczzHoward/article-cli/internal/client/models"
	"github.com/cczzHoward/article-cli/internal/client/session"
	"github.com/cczzHoward/article-cli/internal/logging"
)

// ArticleService covers browsing and authoring flows.
type ArticleService interface {
	List(ctx context.Context, filter api.ArticleFilter) (*models.ArticleList, error)
	Get(ctx context.Context, id string) (*models.Article, error)

	// Mine lists the signed-in user's own articles.
	Mine(ctx context.Context, page, limit int) (*models.ArticleList, error)

	Categories(ctx context.Context) ([]models.Category, error)

	// Publish validates the form, creates the article, and clears the
	// draft on success. On any failure the draft is left intact.
	Publish(ctx context.Context, form *ArticleForm) (*models.Article, error)

	// Update edits an existing article from the form. Only title and
	// content are sent; the category is fixed after publish.
	Update(ctx context.Context, id string, form *ArticleForm) (*models.Article, error)

	Delete(ctx context.Context, id string) error
}

type articleService struct {
	client  api.Client
	session *session.Session
	logger  logging.Logger
}

func NewArticleService(client api.Client, sess *session.Session, logger logging.Logger) ArticleService {
	return &articleService{client: client, session: sess, logger: logger}
}

func (s *articleService) List(ctx context.Context, filter api.ArticleFilter) (*models.ArticleList, error) {
	return s.client.ListArticles(ctx, filter)
}

func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	return s.client.GetArticle(ctx, id)
}

func (s *articleService) Mine(ctx context.Context, page, limit int) (*models.ArticleList, error) {
	user, ok := s.session.User()
	if !ok {
		return nil, api.ErrUnauthorized
	}
	return s.client.ListArticles(ctx, api.ArticleFilter{Author: user.ID, Page: page, Limit: limit})
}

func (s *articleService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.client.ListCategories(ctx)
}

func (s *articleService) Publish(ctx context.Context, form *ArticleForm) (*models.Article, error) {
	if _, ok := s.session.Token(); !ok {
		return nil, api.ErrUnauthorized
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	v := form.Values()
	payload := models.ArticlePayload{
		Title:      v.Title,
		Content:    v.Content,
		Category:   v.Category,
		Tags:       v.Tags,
		CoverImage: v.CoverImage,
	}

	article, err := s.client.CreateArticle(ctx, payload)
	if err != nil {
		// Draft stays in place so the user's input survives the failure.
		return nil, fmt.Errorf("publish error: %w", err)
	}

	form.MarkSubmitted(ctx)
	s.logger.Info(ctx, "article published", "id", article.ID)
	return article, nil
}

func (s *articleService) Update(ctx context.Context, id string, form *ArticleForm) (*models.Article, error) {
	if _, ok := s.session.Token(); !ok {
		return nil, api.ErrUnauthorized
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	v := form.Values()
	article, err := s.client.UpdateArticle(ctx, id, models.ArticleUpdate{Title: v.Title, Content: v.Content})
	if err != nil {
		return nil, fmt.Errorf("update error: %w", err)
	}

	form.MarkSubmitted(ctx)
	s.logger.Info(ctx, "article updated", "id", id)
	return article, nil
}

func (s *articleService) Delete(ctx context.Context, id string) error {
	if _, ok := s.session.Token(); !ok {
		return api.ErrUnauthorized
	}
	if err := s.client.DeleteArticle(ctx, id); err != nil {
		return fmt.Errorf("delete error: %w", err)
	}
	return nil
}

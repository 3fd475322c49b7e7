package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cczzHoward/article-cli/internal/client/models"
)

// Client is the transport-agnostic contract for talking to the article
// platform backend. The concrete implementation is HTTPClient.
type Client interface {
	ListArticles(ctx context.Context, filter ArticleFilter) (*models.ArticleList, error)
	GetArticle(ctx context.Context, id string) (*models.Article, error)
	CreateArticle(ctx context.Context, payload models.ArticlePayload) (*models.Article, error)
	UpdateArticle(ctx context.Context, id string, payload models.ArticleUpdate) (*models.Article, error)
	DeleteArticle(ctx context.Context, id string) error

	LikeArticle(ctx context.Context, id string) error
	UnlikeArticle(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]models.Category, error)

	CreateComment(ctx context.Context, articleID string, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error

	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

// ArticleFilter holds the recognized query parameters of the list endpoint.
// Zero values are dropped from the query string rather than forwarded, and
// out-of-range page/limit values are clamped to 1.
type ArticleFilter struct {
	Keyword  string
	Category string
	Author   string
	Page     int
	Limit    int
}

func (f ArticleFilter) query() url.Values {
	q := url.Values{}
	if f.Keyword != "" {
		q.Set("keyword", f.Keyword)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Author != "" {
		q.Set("author", f.Author)
	}
	if f.Page != 0 {
		q.Set("page", strconv.Itoa(max(f.Page, 1)))
	}
	if f.Limit != 0 {
		q.Set("limit", strconv.Itoa(max(f.Limit, 1)))
	}
	return q
}

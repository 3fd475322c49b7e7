package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cczzHoward/article-cli/internal/client/models"
	"github.com/cczzHoward/article-cli/internal/client/session"
	"github.com/cczzHoward/article-cli/internal/logging"
	"github.com/google/uuid"
)

// envelope is the standard response wrapper every endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// HTTPClient implements Client over JSON-over-HTTP. Every request carries a
// request id and, when a credential is present, a bearer token. Response
// payloads pass through NormalizeIDs before being decoded into models.
//
// The only state HTTPClient mutates outside of returning data is the session
// credential, which it clears when the server answers 401.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	session *session.Session
	logger  logging.Logger
}

// NewHTTPClient builds a client for the API at baseURL (including the
// /api/v1 prefix). The base URL is fixed for the lifetime of the client.
func NewHTTPClient(baseURL string, timeout time.Duration, sess *session.Session, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: sess,
		logger:  logger,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token, ok := c.session.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Info(ctx, "credential rejected", "method", method, "path", path)
		c.session.Expire(ctx)
		return ErrUnauthorized
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 400 {
			return &RemoteError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decoding response: %w", err)
	}

	if !env.Success || resp.StatusCode >= 400 {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &RemoteError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	data, err := NormalizeIDs(env.Data)
	if err != nil {
		return fmt.Errorf("normalizing response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response data: %w", err)
	}
	return nil
}

func (c *HTTPClient) ListArticles(ctx context.Context, filter ArticleFilter) (*models.ArticleList, error) {
	list := &models.ArticleList{}
	if err := c.do(ctx, http.MethodGet, "/articles/list", filter.query(), nil, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	article := &models.Article{}
	if err := c.do(ctx, http.MethodGet, "/articles/"+url.PathEscape(id), nil, nil, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (c *HTTPClient) CreateArticle(ctx context.Context, payload models.ArticlePayload) (*models.Article, error) {
	article := &models.Article{}
	if err := c.do(ctx, http.MethodPost, "/articles", nil, payload, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (c *HTTPClient) UpdateArticle(ctx context.Context, id string, payload models.ArticleUpdate) (*models.Article, error) {
	article := &models.Article{}
	if err := c.do(ctx, http.MethodPatch, "/articles/"+url.PathEscape(id), nil, payload, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (c *HTTPClient) DeleteArticle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/articles/"+url.PathEscape(id), nil, nil, nil)
}

func (c *HTTPClient) LikeArticle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/articles/"+url.PathEscape(id)+"/like", nil, nil, nil)
}

func (c *HTTPClient) UnlikeArticle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/articles/"+url.PathEscape(id)+"/like", nil, nil, nil)
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories/list", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, articleID string, content string) (*models.Comment, error) {
	comment := &models.Comment{}
	body := map[string]string{"content": content}
	if err := c.do(ctx, http.MethodPost, "/comments/"+url.PathEscape(articleID), nil, body, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (c *HTTPClient) DeleteComment(ctx context.Context, commentID string) error {
	return c.do(ctx, http.MethodDelete, "/comments/"+url.PathEscape(commentID), nil, nil, nil)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	auth := &models.AuthData{}
	creds := models.Credentials{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/users/login", nil, creds, auth); err != nil {
		return "", err
	}
	return auth.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) (string, error) {
	auth := &models.AuthData{}
	creds := models.Credentials{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/users/register", nil, creds, auth); err != nil {
		return "", err
	}
	return auth.Token, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	user := &models.User{}
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

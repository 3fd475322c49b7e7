package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/cczzHoward/article-cli/internal/client/api"
	"github.com/cczzHoward/article-cli/internal/client/models"
	"github.com/cczzHoward/article-cli/internal/client/session"
	"github.com/cczzHoward/article-cli/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func noopLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ---- session helpers ----

// memMeta реализует metadata.Repository поверх карты в памяти.
type memMeta struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemMeta() *memMeta { return &memMeta{values: make(map[string][]byte)} }

func (m *memMeta) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *memMeta) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memMeta) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *memMeta) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string][]byte)
	return nil
}

func makeToken(t *testing.T, id, username string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       id,
		"username": username,
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func loggedInSession(t *testing.T) *session.Session {
	t.Helper()
	sess := session.New(newMemMeta(), noopLogger())
	require.NoError(t, sess.SetToken(context.Background(), makeToken(t, "u1", "alice")))
	return sess
}

func anonymousSession() *session.Session {
	return session.New(newMemMeta(), noopLogger())
}

// ---- drafts repository fake ----

// memDrafts реализует drafts.Repository; ошибки можно подставить для
// проверки, что сервис их глотает.
type memDrafts struct {
	mu     sync.Mutex
	values map[string][]byte

	getErr    error
	setErr    error
	deleteErr error
}

func newMemDrafts() *memDrafts { return &memDrafts{values: make(map[string][]byte)} }

func (m *memDrafts) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.values[key], nil
}

func (m *memDrafts) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *memDrafts) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.values, key)
	return nil
}

func (m *memDrafts) Keys(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys, nil
}

// ---- fake API client ----

// fakeClient implements api.Client for service unit tests. Results and
// errors are configured per call; argument capture fields allow assertions.
type fakeClient struct {
	mu sync.Mutex

	ListRet *models.ArticleList
	ListErr error

	GetRet *models.Article
	GetErr error

	CreateRet *models.Article
	CreateErr error

	UpdateRet *models.Article
	UpdateErr error

	DeleteErr error

	LikeErr   error
	UnlikeErr error
	// likeStarted/likeRelease allow tests to hold a like call open.
	likeStarted chan struct{}
	likeRelease chan struct{}

	CategoriesRet []models.Category
	CategoriesErr error

	CommentRet       *models.Comment
	CommentErr       error
	DeleteCommentErr error

	LoginTok string
	LoginErr error

	RegisterTok string
	RegisterErr error

	MeRet *models.User
	MeErr error

	LastFilter    api.ArticleFilter
	LastGetID     string
	LastCreate    models.ArticlePayload
	LastUpdateID  string
	LastUpdate    models.ArticleUpdate
	LastLikeID    string
	LastUnlikeID  string
	LastCommentID string
	LastComment   string
	LastLogin     models.Credentials

	LikeCalls   int
	UnlikeCalls int
}

func (f *fakeClient) ListArticles(_ context.Context, filter api.ArticleFilter) (*models.ArticleList, error) {
	f.mu.Lock()
	f.LastFilter = filter
	f.mu.Unlock()
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetArticle(_ context.Context, id string) (*models.Article, error) {
	f.mu.Lock()
	f.LastGetID = id
	f.mu.Unlock()
	return f.GetRet, f.GetErr
}

func (f *fakeClient) CreateArticle(_ context.Context, payload models.ArticlePayload) (*models.Article, error) {
	f.mu.Lock()
	f.LastCreate = payload
	f.mu.Unlock()
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateArticle(_ context.Context, id string, payload models.ArticleUpdate) (*models.Article, error) {
	f.mu.Lock()
	f.LastUpdateID = id
	f.LastUpdate = payload
	f.mu.Unlock()
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteArticle(_ context.Context, id string) error {
	return f.DeleteErr
}

func (f *fakeClient) LikeArticle(_ context.Context, id string) error {
	f.mu.Lock()
	f.LastLikeID = id
	f.LikeCalls++
	started := f.likeStarted
	release := f.likeRelease
	f.mu.Unlock()
	if started != nil {
		close(started)
	}
	if release != nil {
		<-release
	}
	return f.LikeErr
}

func (f *fakeClient) UnlikeArticle(_ context.Context, id string) error {
	f.mu.Lock()
	f.LastUnlikeID = id
	f.UnlikeCalls++
	f.mu.Unlock()
	return f.UnlikeErr
}

func (f *fakeClient) ListCategories(_ context.Context) ([]models.Category, error) {
	return f.CategoriesRet, f.CategoriesErr
}

func (f *fakeClient) CreateComment(_ context.Context, articleID string, content string) (*models.Comment, error) {
	f.mu.Lock()
	f.LastCommentID = articleID
	f.LastComment = content
	f.mu.Unlock()
	return f.CommentRet, f.CommentErr
}

func (f *fakeClient) DeleteComment(_ context.Context, commentID string) error {
	return f.DeleteCommentErr
}

func (f *fakeClient) Login(_ context.Context, username, password string) (string, error) {
	f.mu.Lock()
	f.LastLogin = models.Credentials{Username: username, Password: password}
	f.mu.Unlock()
	return f.LoginTok, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, username, password string) (string, error) {
	return f.RegisterTok, f.RegisterErr
}

func (f *fakeClient) CurrentUser(_ context.Context) (*models.User, error) {
	return f.MeRet, f.MeErr
}

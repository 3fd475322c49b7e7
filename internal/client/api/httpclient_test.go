package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/cczzHoward/article-cli/internal/client/models"
	"github.com/cczzHoward/article-cli/internal/client/session"
	"github.com/cczzHoward/article-cli/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func noopLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// memMetadata is an in-memory metadata.Repository for session tests.
type memMetadata struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemMetadata() *memMetadata {
	return &memMetadata{values: make(map[string][]byte)}
}

func (m *memMetadata) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *memMetadata) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memMetadata) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *memMetadata) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string][]byte)
	return nil
}

func testToken(t *testing.T, id, username string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       id,
		"username": username,
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newTestClient(t *testing.T, handler http.Handler) (*HTTPClient, *session.Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.New(newMemMetadata(), noopLogger())
	return NewHTTPClient(srv.URL+"/api/v1", 2*time.Second, sess, noopLogger()), sess
}

func envelopeJSON(data string) string {
	return `{"success":true,"data":` + data + `}`
}

func articlePayload(title, content string) models.ArticlePayload {
	return models.ArticlePayload{Title: title, Content: content, Category: "general"}
}

// ---- tests ----

func TestHTTPClient_GetArticle_UnwrapsAndNormalizes(t *testing.T) {
	ctx := context.Background()

	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		io.WriteString(w, envelopeJSON(`{"_id":"a1","title":"Hello","author":{"_id":"u1","username":"alice"}}`))
	}))

	article, err := client.GetArticle(ctx, "a1")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/articles/a1", gotPath)
	assert.Equal(t, "a1", article.ID)
	assert.Equal(t, "Hello", article.Title)
	assert.Equal(t, "u1", article.Author.ID)
}

func TestHTTPClient_ListArticles_FilterQuery(t *testing.T) {
	ctx := context.Background()

	var gotQuery map[string][]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		io.WriteString(w, envelopeJSON(`{"data":[{"_id":"a1","title":"one"}],"total":1,"page":1,"limit":10}`))
	}))

	list, err := client.ListArticles(ctx, ArticleFilter{Keyword: "go", Page: -3, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, []string{"go"}, gotQuery["keyword"])
	assert.Equal(t, []string{"1"}, gotQuery["page"], "page must be clamped to 1")
	assert.Equal(t, []string{"10"}, gotQuery["limit"])
	assert.NotContains(t, gotQuery, "category", "empty filter values must be dropped")
	assert.NotContains(t, gotQuery, "author")

	require.Len(t, list.Data, 1)
	assert.Equal(t, "a1", list.Data[0].ID)
	assert.Equal(t, 1, list.Total)
}

func TestHTTPClient_AttachesBearerToken(t *testing.T) {
	ctx := context.Background()
	token := testToken(t, "u1", "alice")

	var gotAuth string
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, envelopeJSON(`{"id":"u1","username":"alice"}`))
	}))
	require.NoError(t, sess.SetToken(ctx, token))

	_, err := client.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+token, gotAuth)
}

func TestHTTPClient_NoTokenNoHeader(t *testing.T) {
	ctx := context.Background()

	var gotAuth string
	var hasHeader bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasHeader = r.Header["Authorization"]
		io.WriteString(w, envelopeJSON(`[]`))
	}))

	_, err := client.ListCategories(ctx)
	require.NoError(t, err)
	assert.False(t, hasHeader)
	assert.Empty(t, gotAuth)
}

func TestHTTPClient_AuthRejectionClearsCredential(t *testing.T) {
	ctx := context.Background()

	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"success":false,"message":"token expired"}`)
	}))
	require.NoError(t, sess.SetToken(ctx, testToken(t, "u1", "alice")))

	expired := false
	sess.OnExpired(func() { expired = true })

	article, err := client.GetArticle(ctx, "a1")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Nil(t, article, "no partial data on auth rejection")

	_, hasToken := sess.Token()
	assert.False(t, hasToken, "credential must be cleared")
	assert.True(t, expired, "expiry signal must fire")
}

func TestHTTPClient_EnvelopeFailureBecomesRemoteError(t *testing.T) {
	ctx := context.Background()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"success":false,"message":"title is too long"}`)
	}))

	_, err := client.CreateArticle(ctx, articlePayload("t", "c"))
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "title is too long", remote.Message)
	assert.Equal(t, http.StatusBadRequest, remote.Status)
}

func TestHTTPClient_SuccessFalseWith200(t *testing.T) {
	ctx := context.Background()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":false,"message":"category does not exist","data":{"partial":true}}`)
	}))

	_, err := client.CreateArticle(ctx, articlePayload("t", "c"))
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "category does not exist", remote.Message)
}

func TestHTTPClient_TransportFailure(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing is listening anymore

	sess := session.New(newMemMetadata(), noopLogger())
	client := NewHTTPClient(srv.URL+"/api/v1", time.Second, sess, noopLogger())

	_, err := client.GetArticle(ctx, "a1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Login_ReturnsToken(t *testing.T) {
	ctx := context.Background()

	var gotBody map[string]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/users/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, envelopeJSON(`{"token":"tok-123"}`))
	}))

	token, err := client.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, "alice", gotBody["username"])
	assert.Equal(t, "secret", gotBody["password"])
}

func TestHTTPClient_LikeEndpoints(t *testing.T) {
	ctx := context.Background()

	type call struct{ method, path string }
	var calls []call
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		io.WriteString(w, `{"success":true}`)
	}))
	require.NoError(t, sess.SetToken(ctx, testToken(t, "u1", "alice")))

	require.NoError(t, client.LikeArticle(ctx, "a1"))
	require.NoError(t, client.UnlikeArticle(ctx, "a1"))

	require.Len(t, calls, 2)
	assert.Equal(t, call{http.MethodPost, "/api/v1/articles/a1/like"}, calls[0])
	assert.Equal(t, call{http.MethodDelete, "/api/v1/articles/a1/like"}, calls[1])
}

package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/cczzHoward/article-cli/internal/client/api"
	"github.com/cczzHoward/article-cli/internal/client/config"
	"github.com/cczzHoward/article-cli/internal/client/services"
	"github.com/cczzHoward/article-cli/internal/client/session"
	"github.com/cczzHoward/article-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the services behind the interactive CLI.
type App struct {
	config   *config.Config
	logger   logging.Logger
	session  *session.Session
	auth     services.AuthService
	articles services.ArticleService
	comments services.CommentService
	likes    *services.LikeService
	drafts   *services.DraftService
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	repos, err := api.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sess := session.New(repos.Metadata, logger)
	if err := sess.Restore(ctx); err != nil {
		logger.Warn(ctx, "failed to restore session", "error", err)
	}
	sess.OnExpired(func() {
		printlnFn("Your session has expired. Please login again.")
	})

	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, sess, logger)
	draftService := services.NewDraftService(repos.Drafts, logger)

	return &App{
		config:   c,
		logger:   logger,
		session:  sess,
		auth:     services.NewAuthService(apiClient, sess, logger),
		articles: services.NewArticleService(apiClient, sess, logger),
		comments: services.NewCommentService(apiClient, sess, logger),
		likes:    services.NewLikeService(apiClient, sess, logger),
		drafts:   draftService,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Token()
	return ok
}

func (a *App) getStatus() string {
	if user, ok := a.session.User(); ok {
		return "(" + user.Username + ")"
	}
	return ""
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to the article CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

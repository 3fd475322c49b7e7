package services

import (
	"context"
	"fmt"

	"github.com/cczzHoward/article-cli/internal/client/api"
	"github.com/cczzHoward/article-cli/internal/client/models"
	"github.com/cczzHoward/article-cli/internal/client/session"
	"github.com/cczzHoward/article-cli/internal/logging"
)

// CommentService covers commenting on articles.
type CommentService interface {
	Add(ctx context.Context, articleID, content string) (*models.Comment, error)
	Remove(ctx context.Context, commentID string) error
}

type commentService struct {
	client  api.Client
	session *session.Session
	logger  logging.Logger
}

func NewCommentService(client api.Client, sess *session.Session, logger logging.Logger) CommentService {
	return &commentService{client: client, session: sess, logger: logger}
}

func (s *commentService) Add(ctx context.Context, articleID, content string) (*models.Comment, error) {
	if _, ok := s.session.Token(); !ok {
		return nil, api.ErrUnauthorized
	}
	if content == "" {
		return nil, fmt.Errorf("%w: comment content is required", ErrValidation)
	}

	comment, err := s.client.CreateComment(ctx, articleID, content)
	if err != nil {
		return nil, fmt.Errorf("comment error: %w", err)
	}
	return comment, nil
}

func (s *commentService) Remove(ctx context.Context, commentID string) error {
	if _, ok := s.session.Token(); !ok {
		return api.ErrUnauthorized
	}
	if err := s.client.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment error: %w", err)
	}
	return nil
}

package services

import (
	"context"
	"sync"

	"github.com/cczzHoward/article-cli/internal/client/api"
	"github.com/cczzHoward/article-cli/internal/client/session"
	"github.com/cczzHoward/article-cli/internal/logging"
)

// LikeState is the pair of fields subject to optimistic update.
type LikeState struct {
	Liked bool
	Count int
}

// LikeService coordinates optimistic like/unlike toggles. The caller's
// visible state is flipped before the network call is dispatched; on
// success the optimistic value becomes the committed value (the server
// count is not re-fetched), on failure the
// exact pre-toggle state is restored and the error surfaced once.
//
// At most one toggle per article may be in flight; a second toggle for the
// same article is rejected locally while the first is pending, matching a
// disabled like button.
type LikeService struct {
	client  api.Client
	session *session.Session
	logger  logging.Logger

	mu      sync.Mutex
	pending map[string]struct{}
}

func NewLikeService(client api.Client, sess *session.Session, logger logging.Logger) *LikeService {
	return &LikeService{
		client:  client,
		session: sess,
		logger:  logger,
		pending: make(map[string]struct{}),
	}
}

// Toggle flips the like state for articleID. apply is invoked synchronously
// with the optimistic state before the network call, and again with the
// committed (pre-toggle) state if the call fails. The returned state is the
// one the caller should keep.
//
// Without a credential the toggle is rejected before any state mutation or
// network traffic.
func (s *LikeService) Toggle(ctx context.Context, articleID string, committed LikeState, apply func(LikeState)) (LikeState, error) {
	if _, ok := s.session.Token(); !ok {
		return committed, api.ErrUnauthorized
	}

	s.mu.Lock()
	if _, busy := s.pending[articleID]; busy {
		s.mu.Unlock()
		return committed, ErrTogglePending
	}
	s.pending[articleID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.pending, articleID)
		s.mu.Unlock()
	}()

	next := LikeState{Liked: !committed.Liked, Count: committed.Count}
	if next.Liked {
		next.Count++
	} else {
		next.Count--
	}

	// Visible before the request is even dispatched.
	apply(next)

	var err error
	if next.Liked {
		err = s.client.LikeArticle(ctx, articleID)
	} else {
		err = s.client.UnlikeArticle(ctx, articleID)
	}
	if err != nil {
		s.logger.Info(ctx, "like toggle reverted", "article", articleID, "error", err)
		apply(committed)
		return committed, err
	}

	return next, nil
}

// Pending reports whether a toggle for articleID is still in flight.
func (s *LikeService) Pending(articleID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.pending[articleID]
	return busy
}

package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/cczzHoward/article-cli/internal/client/models"
	"github.com/cczzHoward/article-cli/internal/client/repositories/drafts"
	"github.com/cczzHoward/article-cli/internal/logging"
)

// DraftKeyCreate is the storage key for the article creation form.
const DraftKeyCreate = "article_draft_create"

// DraftKeyEdit derives the storage key for editing a specific article, so a
// draft for one article can never surface while editing another.
func DraftKeyEdit(articleID string) string {
	return "article_draft_edit_" + articleID
}

// DraftService persists form snapshots in the local store. Drafts are a
// best-effort convenience: write and delete failures are absorbed here and
// only logged, never propagated to the primary flow. Writes are serialized
// so a stale snapshot cannot overwrite a newer one.
type DraftService struct {
	repo   drafts.Repository
	logger logging.Logger

	mu sync.Mutex
}

func NewDraftService(repo drafts.Repository, logger logging.Logger) *DraftService {
	return &DraftService{repo: repo, logger: logger}
}

// Load returns the draft stored under key, or ok=false when there is none.
// A draft that cannot be decoded is treated as absent and removed.
func (s *DraftService) Load(ctx context.Context, key string) (models.ArticleDraft, bool) {
	var draft models.ArticleDraft

	value, err := s.repo.Get(ctx, key)
	if err != nil {
		s.logger.Warn(ctx, "failed to load draft", "key", key, "error", err)
		return draft, false
	}
	if len(value) == 0 {
		return draft, false
	}

	if err := json.Unmarshal(value, &draft); err != nil {
		s.logger.Warn(ctx, "removing unreadable draft", "key", key, "error", err)
		s.delete(ctx, key)
		return models.ArticleDraft{}, false
	}
	return draft, true
}

// Save stores the draft under key, replacing any previous snapshot. An
// empty draft removes the stored one instead of persisting a blank record.
func (s *DraftService) Save(ctx context.Context, key string, draft models.ArticleDraft) {
	if draft.Empty() {
		s.delete(ctx, key)
		return
	}

	value, err := json.Marshal(draft)
	if err != nil {
		s.logger.Warn(ctx, "failed to encode draft", "key", key, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Set(ctx, key, value); err != nil {
		s.logger.Warn(ctx, "failed to save draft", "key", key, "error", err)
	}
}

// Clear removes the draft stored under key.
func (s *DraftService) Clear(ctx context.Context, key string) {
	s.delete(ctx, key)
}

// Keys lists the keys that currently hold drafts, newest first.
func (s *DraftService) Keys(ctx context.Context) []string {
	keys, err := s.repo.Keys(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to list drafts", "error", err)
		return nil
	}
	return keys
}

func (s *DraftService) delete(ctx context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Delete(ctx, key); err != nil {
		s.logger.Warn(ctx, "failed to delete draft", "key", key, "error", err)
	}
}

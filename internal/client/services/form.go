package services

import (
	"context"
	"fmt"

	"github.com/cczzHoward/article-cli/internal/client/models"
)

// Limits carried over from the publish form.
const (
	maxTitleLen   = 128
	maxContentLen = 25565
)

// FormState tracks a single form instance through its lifecycle.
type FormState int

const (
	// FormUninitialized: created, draft not loaded yet. Field changes are
	// rejected so an unloaded draft is never clobbered with empty values.
	FormUninitialized FormState = iota

	// FormLoaded: draft (or server initial values) applied, editable.
	FormLoaded

	// FormEditing: at least one field changed; every change re-saves the draft.
	FormEditing

	// FormSubmitted: submitted successfully, draft cleared. Terminal.
	FormSubmitted
)

// ArticleForm drives the publish/edit form: one-time draft load with draft
// precedence over server-supplied initial values, draft re-save on every
// field change, clear on successful submit. Abandoning the form (dropping
// the instance without MarkSubmitted) leaves the draft in place for the
// next instance with the same key.
//
// ArticleForm is not safe for concurrent use; each instance belongs to a
// single interactive flow.
type ArticleForm struct {
	key             string
	drafts          *DraftService
	state           FormState
	values          models.ArticleDraft
	requireCategory bool
	fromDraft       bool
}

// NewCreateForm builds the form for publishing a new article.
func NewCreateForm(drafts *DraftService) *ArticleForm {
	return &ArticleForm{key: DraftKeyCreate, drafts: drafts, requireCategory: true}
}

// NewEditForm builds the form for editing an existing article. The category
// is fixed after publish, so it is not required (and not editable) here.
func NewEditForm(drafts *DraftService, articleID string) *ArticleForm {
	return &ArticleForm{key: DraftKeyEdit(articleID), drafts: drafts}
}

// Load initializes the form exactly once. A stored draft takes precedence
// over the server-supplied initial values; initial is only used when no
// draft exists. Returns whether a draft was restored.
func (f *ArticleForm) Load(ctx context.Context, initial *models.ArticleDraft) (bool, error) {
	if f.state != FormUninitialized {
		return false, ErrFormAlreadyLoaded
	}

	if draft, ok := f.drafts.Load(ctx, f.key); ok {
		f.values = draft
		f.fromDraft = true
	} else if initial != nil {
		f.values = *initial
	}

	f.state = FormLoaded
	return f.fromDraft, nil
}

// Set applies a field mutation and re-saves the draft. Rejected before Load
// and after successful submission.
func (f *ArticleForm) Set(ctx context.Context, mutate func(*models.ArticleDraft)) error {
	switch f.state {
	case FormUninitialized:
		return ErrFormNotLoaded
	case FormSubmitted:
		return ErrFormSubmitted
	}

	mutate(&f.values)
	f.state = FormEditing
	f.drafts.Save(ctx, f.key, f.values)
	return nil
}

func (f *ArticleForm) SetTitle(ctx context.Context, title string) error {
	return f.Set(ctx, func(d *models.ArticleDraft) { d.Title = title })
}

func (f *ArticleForm) SetContent(ctx context.Context, content string) error {
	return f.Set(ctx, func(d *models.ArticleDraft) { d.Content = content })
}

func (f *ArticleForm) SetCategory(ctx context.Context, category string) error {
	return f.Set(ctx, func(d *models.ArticleDraft) { d.Category = category })
}

func (f *ArticleForm) SetTags(ctx context.Context, tags []string) error {
	return f.Set(ctx, func(d *models.ArticleDraft) { d.Tags = tags })
}

func (f *ArticleForm) SetCoverImage(ctx context.Context, coverImage string) error {
	return f.Set(ctx, func(d *models.ArticleDraft) { d.CoverImage = coverImage })
}

// DefaultCategory selects the first available category when none is chosen
// yet, mirroring the publish form's auto-select behavior.
func (f *ArticleForm) DefaultCategory(ctx context.Context, categories []models.Category) error {
	if f.values.Category != "" || len(categories) == 0 {
		return nil
	}
	return f.SetCategory(ctx, categories[0].Name)
}

// Validate checks required fields and size limits without touching the
// network. All failures wrap ErrValidation.
func (f *ArticleForm) Validate() error {
	if f.values.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len(f.values.Title) > maxTitleLen {
		return fmt.Errorf("%w: title exceeds %d characters", ErrValidation, maxTitleLen)
	}
	if f.values.Content == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	if len(f.values.Content) > maxContentLen {
		return fmt.Errorf("%w: content exceeds %d characters", ErrValidation, maxContentLen)
	}
	if f.requireCategory && f.values.Category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	return nil
}

// MarkSubmitted clears the draft after a successful submission and closes
// the form instance.
func (f *ArticleForm) MarkSubmitted(ctx context.Context) {
	f.drafts.Clear(ctx, f.key)
	f.state = FormSubmitted
}

// Discard drops the draft on the user's request. The form stays editable
// with empty values.
func (f *ArticleForm) Discard(ctx context.Context) {
	f.values = models.ArticleDraft{}
	f.fromDraft = false
	f.drafts.Clear(ctx, f.key)
	if f.state != FormUninitialized && f.state != FormSubmitted {
		f.state = FormLoaded
	}
}

// Values returns a copy of the current field values.
func (f *ArticleForm) Values() models.ArticleDraft { return f.values }

// State returns the form's lifecycle state.
func (f *ArticleForm) State() FormState { return f.state }

// FromDraft reports whether Load restored a stored draft.
func (f *ArticleForm) FromDraft() bool { return f.fromDraft }

// Key returns the draft key this form persists under.
func (f *ArticleForm) Key() string { return f.key }

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cczzHoward/article-cli/internal/client/models"
	"github.com/cczzHoward/article-cli/internal/client/services"
)

// Publish walks the user through the article creation form. Every field
// entry re-saves the local draft, so quitting halfway (or a failed submit)
// keeps the input for the next 'publish'.
func (a *App) Publish(ctx context.Context) error {
	form := services.NewCreateForm(a.drafts)
	if _, err := form.Load(ctx, nil); err != nil {
		return err
	}
	if form.FromDraft() {
		printlnFn("Restored your unsaved draft. Press Enter to keep a field as is.")
	}

	categories, err := a.articles.Categories(ctx)
	if err != nil {
		a.logger.Warn(ctx, "failed to load categories", "error", err)
	}
	_ = form.DefaultCategory(ctx, categories)

	if err := a.fillForm(ctx, form, categories, false); err != nil {
		return err
	}

	confirm, err := getSimpleText(a.reader, "Publish now? (y/n, draft is kept on 'n')", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "yes" {
		printlnFn("Draft saved. Come back with 'publish' to continue.")
		return nil
	}

	article, err := a.articles.Publish(ctx, form)
	if err != nil {
		printlnFn("Publish failed:", userMessage(err))
		return err
	}

	printlnFn("Published:", article.ID)
	return nil
}

// Edit loads an existing article into the form. The stored edit draft for
// that article, if any, takes precedence over the server values. Category
// cannot be changed after publish.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Article id", os.Stdout)
	if err != nil {
		return err
	}

	article, err := a.articles.Get(ctx, id)
	if err != nil {
		printlnFn("Error:", userMessage(err))
		return err
	}

	form := services.NewEditForm(a.drafts, id)
	initial := &models.ArticleDraft{
		Title:      article.Title,
		Content:    article.Content,
		Category:   article.Category.Name,
		Tags:       article.Tags,
		CoverImage: article.CoverImage,
	}
	fromDraft, err := form.Load(ctx, initial)
	if err != nil {
		return err
	}
	if fromDraft {
		printlnFn("Restored your unsaved edits. Press Enter to keep a field as is.")
	}

	if err := a.fillForm(ctx, form, nil, true); err != nil {
		return err
	}

	confirm, err := getSimpleText(a.reader, "Save changes? (y/n, draft is kept on 'n')", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "yes" {
		printlnFn("Draft saved. Come back with 'edit' to continue.")
		return nil
	}

	updated, err := a.articles.Update(ctx, id, form)
	if err != nil {
		printlnFn("Update failed:", userMessage(err))
		return err
	}

	printlnFn("Updated:", updated.ID)
	return nil
}

// fillForm prompts for each form field. Empty input keeps the current
// (draft or server-supplied) value.
func (a *App) fillForm(ctx context.Context, form *services.ArticleForm, categories []models.Category, editing bool) error {
	values := form.Values()

	title, err := getSimpleText(a.reader, prompt("Title", values.Title), os.Stdout)
	if err != nil {
		return err
	}
	if title != "" {
		if err := form.SetTitle(ctx, title); err != nil {
			return err
		}
	}

	content, err := GetMultiline(a.reader, prompt("Content", truncate(values.Content, 40)), os.Stdout)
	if err != nil {
		return err
	}
	if content != "" {
		if err := form.SetContent(ctx, content); err != nil {
			return err
		}
	}

	if !editing {
		if len(categories) > 0 {
			printlnFn("Categories:")
			for _, c := range categories {
				printlnFn("  -", c.Name)
			}
		}
		category, err := getSimpleText(a.reader, prompt("Category", form.Values().Category), os.Stdout)
		if err != nil {
			return err
		}
		if category != "" {
			if err := form.SetCategory(ctx, category); err != nil {
				return err
			}
		}

		tags, err := GetTags(a.reader, os.Stdout)
		if err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := form.SetTags(ctx, tags); err != nil {
				return err
			}
		}

		cover, err := getSimpleText(a.reader, prompt("Cover image URL", form.Values().CoverImage), os.Stdout)
		if err != nil {
			return err
		}
		if cover != "" {
			if err := form.SetCoverImage(ctx, cover); err != nil {
				return err
			}
		}
	}

	return nil
}

// Drafts lists the locally stored drafts.
func (a *App) Drafts(ctx context.Context) error {
	keys := a.drafts.Keys(ctx)
	if len(keys) == 0 {
		printlnFn("No drafts.")
		return nil
	}
	for _, key := range keys {
		printlnFn("  -", key)
	}
	return nil
}

// Discard removes a stored draft on the user's request.
func (a *App) Discard(ctx context.Context) error {
	key, err := getSimpleText(a.reader, "Draft key (empty for the creation draft)", os.Stdout)
	if err != nil {
		return err
	}
	if key == "" {
		key = services.DraftKeyCreate
	}

	a.drafts.Clear(ctx, key)
	printlnFn("Draft discarded.")
	return nil
}

func prompt(label, current string) string {
	if current == "" {
		return label
	}
	return fmt.Sprintf("%s [%s]", label, current)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

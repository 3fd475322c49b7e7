package cli

import (
	"context"
	"os"
)

// Comment adds a comment to an article.
func (a *App) Comment(ctx context.Context) error {
	articleID, err := getSimpleText(a.reader, "Article id", os.Stdout)
	if err != nil {
		return err
	}

	content, err := GetMultiline(a.reader, "Comment", os.Stdout)
	if err != nil {
		return err
	}

	comment, err := a.comments.Add(ctx, articleID, content)
	if err != nil {
		printlnFn("Comment failed:", userMessage(err))
		return err
	}

	printlnFn("Comment posted:", comment.ID)
	return nil
}

// Uncomment deletes one of the user's comments.
func (a *App) Uncomment(ctx context.Context) error {
	commentID, err := getSimpleText(a.reader, "Comment id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.comments.Remove(ctx, commentID); err != nil {
		printlnFn("Error:", userMessage(err))
		return err
	}

	printlnFn("Comment deleted.")
	return nil
}

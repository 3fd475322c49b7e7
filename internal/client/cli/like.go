package cli

import (
	"context"
	"os"

	"github.com/cczzHoward/article-cli/internal/client/services"
)

// Like toggles the like flag on an article. The flipped state is shown
// immediately; if the server rejects the toggle the previous state is
// restored and reported.
func (a *App) Like(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Article id", os.Stdout)
	if err != nil {
		return err
	}

	article, err := a.articles.Get(ctx, id)
	if err != nil {
		printlnFn("Error:", userMessage(err))
		return err
	}

	committed := services.LikeState{Liked: article.Liked, Count: article.LikesCount}
	_, err = a.likes.Toggle(ctx, id, committed, func(s services.LikeState) {
		printlnFn(likeLine(s.Liked, s.Count))
	})
	if err != nil {
		printlnFn("Like failed:", userMessage(err))
		return err
	}

	return nil
}

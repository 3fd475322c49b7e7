package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/cczzHoward/article-cli/internal/client/api"
	"github.com/cczzHoward/article-cli/internal/client/models"
)

const defaultPageSize = 10

// List browses published articles, optionally filtered by keyword and
// category. Works without authentication.
func (a *App) List(ctx context.Context) error {
	keyword, err := getSimpleText(a.reader, "Keyword (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	pageText, err := getSimpleText(a.reader, "Page (empty for first)", os.Stdout)
	if err != nil {
		return err
	}
	page, _ := strconv.Atoi(pageText)

	filter := api.ArticleFilter{Keyword: keyword, Category: category, Page: page, Limit: defaultPageSize}
	list, err := a.articles.List(ctx, filter)
	if err != nil {
		printlnFn("Error:", userMessage(err))
		return err
	}

	printArticleList(list)
	return nil
}

// Read shows a single article in full.
func (a *App) Read(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Article id", os.Stdout)
	if err != nil {
		return err
	}

	article, err := a.articles.Get(ctx, id)
	if err != nil {
		printlnFn("Error:", userMessage(err))
		return err
	}

	printlnFn()
	printlnFn(article.Title)
	printlnFn(fmt.Sprintf("by @%s · %s · %s", article.Author.Username, article.Category.Name, article.CreatedAt))
	if article.LikesCount > 0 || article.Liked {
		printlnFn(likeLine(article.Liked, article.LikesCount))
	}
	printlnFn()
	printlnFn(article.Content)
	return nil
}

// Mine lists the signed-in user's own articles.
func (a *App) Mine(ctx context.Context) error {
	list, err := a.articles.Mine(ctx, 1, defaultPageSize)
	if err != nil {
		printlnFn("Error:", userMessage(err))
		return err
	}

	printArticleList(list)
	return nil
}

// Delete removes one of the user's articles after confirmation.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Article id", os.Stdout)
	if err != nil {
		return err
	}

	confirm, err := getSimpleText(a.reader, "Delete article "+id+"? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "yes" {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.articles.Delete(ctx, id); err != nil {
		printlnFn("Error:", userMessage(err))
		return err
	}

	printlnFn("Deleted.")
	return nil
}

func printArticleList(list *models.ArticleList) {
	if len(list.Data) == 0 {
		printlnFn("No articles found.")
		return
	}
	for _, article := range list.Data {
		printlnFn(fmt.Sprintf("%s  %-40s  @%s  [%s]",
			article.ID, article.Title, article.Author.Username, article.Category.Name))
	}
	if list.Total > 0 {
		printlnFn(fmt.Sprintf("page %d · %d total", max(list.Page, 1), list.Total))
	}
}

func likeLine(liked bool, count int) string {
	mark := " "
	if liked {
		mark = "♥"
	}
	return fmt.Sprintf("[%s] %d likes", mark, count)
}

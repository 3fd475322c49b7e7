// Package models defines client-side views of the article platform's
// server-of-record entities. Identifiers are opaque strings assigned by the
// server; the client never fabricates them.
package models

// Author is the embedded author reference carried by articles and comments.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Category groups articles. The list of categories is server-defined.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Article is a published post as returned by the remote API.
type Article struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Author     Author   `json:"author"`
	Category   Category `json:"category"`
	Tags       []string `json:"tags,omitempty"`
	CoverImage string   `json:"cover_image,omitempty"`

	// Liked reports whether the current user has liked this article.
	// Only meaningful on authenticated fetches.
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ArticleList is one page of results from the list endpoint.
type ArticleList struct {
	Data  []Article `json:"data"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

// Comment is a reader comment attached to an article.
type Comment struct {
	ID        string `json:"id"`
	ArticleID string `json:"article_id"`
	Content   string `json:"content"`
	Commenter Author `json:"commenter"`
	CreatedAt string `json:"created_at"`
}

// ArticlePayload is the request body for publishing a new article.
type ArticlePayload struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags,omitempty"`
	CoverImage string   `json:"cover_image,omitempty"`
}

// ArticleUpdate is the request body for editing an existing article.
// Category is fixed after publish, so it is not part of the update payload.
type ArticleUpdate struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

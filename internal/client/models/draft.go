package models

// ArticleDraft is an uncommitted, client-only snapshot of the publish/edit
// form. Drafts are persisted locally between sessions and never sent to the
// server as-is; a validated draft is converted to an ArticlePayload or
// ArticleUpdate at submit time.
type ArticleDraft struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags,omitempty"`
	CoverImage string   `json:"cover_image,omitempty"`
}

// Empty reports whether every field of the draft is unset.
func (d ArticleDraft) Empty() bool {
	return d.Title == "" && d.Content == "" && d.Category == "" &&
		len(d.Tags) == 0 && d.CoverImage == ""
}

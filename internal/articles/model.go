package articles

import (
	"github.com/tungtase04539/ai-news/internal/supabase"
	"github.com/tungtase04539/ai-news/internal/utils"
)

const (
	CategoryNews          = "news"
	CategoryDeepDive      = "deep-dive"
	CategoryTutorial      = "tutorial"
	CategoryMonetization  = "monetization"
	CategoryPromptLibrary = "prompt-library"
)

const (
	table            = "articles"
	defaultThumbnail = "/images/articles/default.jpg"
)

type Article struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Thumbnail string   `json:"thumbnail"`
	Author    string   `json:"author"`
	Date      string   `json:"date"`
	Category  string   `json:"category"`
	Views     int      `json:"views"`
	Likes     int      `json:"likes"`
	Comments  int      `json:"comments"`
	IsVip     bool     `json:"isVip"`
	Tags      []string `json:"tags"`
}

// ForViewer is the presentation contract for the paywall: a VIP article
// never exposes its content to a non-VIP viewer. Everything else (title,
// excerpt, thumbnail) stays visible as the teaser.
func (a Article) ForViewer(viewerIsVip bool) Article {
	if a.IsVip && !viewerIsVip {
		a.Content = ""
	}
	return a
}

type Row struct {
	ID        string   `json:"id,omitempty"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Thumbnail string   `json:"thumbnail"`
	Author    string   `json:"author"`
	Date      string   `json:"date"`
	Category  string   `json:"category"`
	Views     int      `json:"views"`
	Likes     int      `json:"likes"`
	Comments  int      `json:"comments"`
	IsVip     bool     `json:"is_vip"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at,omitempty"`
}

var columns = map[string]string{
	"title":     "title",
	"excerpt":   "excerpt",
	"content":   "content",
	"thumbnail": "thumbnail",
	"author":    "author",
	"date":      "date",
	"category":  "category",
	"views":     "views",
	"likes":     "likes",
	"comments":  "comments",
	"isVip":     "is_vip",
	"tags":      "tags",
}

func init() {
	supabase.MustValidateMapping(Row{}, columns)
}

func rowToArticle(r Row) Article {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return Article{
		ID:        r.ID,
		Title:     r.Title,
		Excerpt:   r.Excerpt,
		Content:   r.Content,
		Thumbnail: r.Thumbnail,
		Author:    r.Author,
		Date:      r.Date,
		Category:  r.Category,
		Views:     r.Views,
		Likes:     r.Likes,
		Comments:  r.Comments,
		IsVip:     r.IsVip,
		Tags:      tags,
	}
}

func articleToRow(a Article) Row {
	return Row{
		Title:     a.Title,
		Excerpt:   a.Excerpt,
		Content:   a.Content,
		Thumbnail: a.Thumbnail,
		Author:    a.Author,
		Date:      a.Date,
		Category:  a.Category,
		Views:     a.Views,
		Likes:     a.Likes,
		Comments:  a.Comments,
		IsVip:     a.IsVip,
		Tags:      a.Tags,
	}
}

type CreateRequest struct {
	Title     string        `json:"title" validate:"required"`
	Excerpt   string        `json:"excerpt" validate:"required"`
	Content   string        `json:"content"`
	Thumbnail string        `json:"thumbnail"`
	Author    string        `json:"author" validate:"required"`
	Date      string        `json:"date" validate:"omitempty,date"`
	Category  string        `json:"category" validate:"required"`
	Views     *int          `json:"views" validate:"omitempty,gte=0"`
	Likes     *int          `json:"likes" validate:"omitempty,gte=0"`
	Comments  *int          `json:"comments" validate:"omitempty,gte=0"`
	IsVip     bool          `json:"isVip"`
	Tags      utils.TagList `json:"tags"`
}

type UpdateRequest struct {
	Title     *string        `json:"title"`
	Excerpt   *string        `json:"excerpt"`
	Content   *string        `json:"content"`
	Thumbnail *string        `json:"thumbnail"`
	Author    *string        `json:"author"`
	Date      *string        `json:"date" validate:"omitempty,date"`
	Category  *string        `json:"category"`
	Views     *int           `json:"views" validate:"omitempty,gte=0"`
	Likes     *int           `json:"likes" validate:"omitempty,gte=0"`
	Comments  *int           `json:"comments" validate:"omitempty,gte=0"`
	IsVip     *bool          `json:"isVip"`
	Tags      *utils.TagList `json:"tags"`
}

func (r UpdateRequest) Patch() map[string]interface{} {
	patch := make(map[string]interface{})
	if r.Title != nil {
		patch["title"] = *r.Title
	}
	if r.Excerpt != nil {
		patch["excerpt"] = *r.Excerpt
	}
	if r.Content != nil {
		patch["content"] = *r.Content
	}
	if r.Thumbnail != nil {
		patch["thumbnail"] = *r.Thumbnail
	}
	if r.Author != nil {
		patch["author"] = *r.Author
	}
	if r.Date != nil {
		patch["date"] = *r.Date
	}
	if r.Category != nil {
		patch["category"] = *r.Category
	}
	if r.Views != nil {
		patch["views"] = *r.Views
	}
	if r.Likes != nil {
		patch["likes"] = *r.Likes
	}
	if r.Comments != nil {
		patch["comments"] = *r.Comments
	}
	if r.IsVip != nil {
		patch["isVip"] = *r.IsVip
	}
	if r.Tags != nil {
		patch["tags"] = []string(*r.Tags)
	}
	return patch
}

package courses

import (
	"github.com/tungtase04539/ai-news/internal/supabase"
)

// Category values the UI knows how to label. Unknown values are accepted
// and rendered with a pass-through label, so nothing here enforces them.
const (
	CategoryChatGPT           = "chatgpt"
	CategoryImageCreation     = "image-creation"
	CategoryImageTools        = "image-tools"
	CategoryVideoAI           = "video-ai"
	CategoryPromptEngineering = "prompt-engineering"
	CategoryAIBasics          = "ai-basics"
)

const (
	table            = "courses"
	defaultThumbnail = "/images/courses/default.jpg"
	defaultRating    = 4.5
)

// Course is the application shape, camelCase at every boundary.
type Course struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Instructor  string  `json:"instructor"`
	Thumbnail   string  `json:"thumbnail"`
	Duration    string  `json:"duration"`
	LessonCount int     `json:"lessonCount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	IsVip       bool    `json:"isVip"`
	Price       int     `json:"price"`
	Students    int     `json:"students"`
	Rating      float64 `json:"rating"`
}

// Row is the persisted shape. id and created_at are server-generated.
type Row struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Instructor  string  `json:"instructor"`
	Thumbnail   string  `json:"thumbnail"`
	Duration    string  `json:"duration"`
	LessonCount int     `json:"lesson_count"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	IsVip       bool    `json:"is_vip"`
	Price       int     `json:"price"`
	Students    int     `json:"students"`
	Rating      float64 `json:"rating"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// columns is the single declarative field-to-column table for this entity.
var columns = map[string]string{
	"title":       "title",
	"instructor":  "instructor",
	"thumbnail":   "thumbnail",
	"duration":    "duration",
	"lessonCount": "lesson_count",
	"category":    "category",
	"description": "description",
	"isVip":       "is_vip",
	"price":       "price",
	"students":    "students",
	"rating":      "rating",
}

func init() {
	supabase.MustValidateMapping(Row{}, columns)
}

func rowToCourse(r Row) Course {
	return Course{
		ID:          r.ID,
		Title:       r.Title,
		Instructor:  r.Instructor,
		Thumbnail:   r.Thumbnail,
		Duration:    r.Duration,
		LessonCount: r.LessonCount,
		Category:    r.Category,
		Description: r.Description,
		IsVip:       r.IsVip,
		Price:       r.Price,
		Students:    r.Students,
		Rating:      r.Rating,
	}
}

func courseToRow(c Course) Row {
	return Row{
		Title:       c.Title,
		Instructor:  c.Instructor,
		Thumbnail:   c.Thumbnail,
		Duration:    c.Duration,
		LessonCount: c.LessonCount,
		Category:    c.Category,
		Description: c.Description,
		IsVip:       c.IsVip,
		Price:       c.Price,
		Students:    c.Students,
		Rating:      c.Rating,
	}
}

type CreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Instructor  string   `json:"instructor" validate:"required"`
	Thumbnail   string   `json:"thumbnail"`
	Duration    string   `json:"duration" validate:"required"`
	LessonCount int      `json:"lessonCount" validate:"required,gte=1"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description" validate:"required"`
	IsVip       bool     `json:"isVip"`
	Price       *int     `json:"price" validate:"omitempty,gte=0"`
	Students    *int     `json:"students" validate:"omitempty,gte=0"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

// UpdateRequest carries a partial overwrite: an absent field leaves the
// stored value untouched, a present field replaces it wholesale. There is
// no deep merge and no cross-field fixup (updating price on a VIP course
// does not clear is_vip).
type UpdateRequest struct {
	Title       *string  `json:"title"`
	Instructor  *string  `json:"instructor"`
	Thumbnail   *string  `json:"thumbnail"`
	Duration    *string  `json:"duration"`
	LessonCount *int     `json:"lessonCount" validate:"omitempty,gte=1"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	IsVip       *bool    `json:"isVip"`
	Price       *int     `json:"price" validate:"omitempty,gte=0"`
	Students    *int     `json:"students" validate:"omitempty,gte=0"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

// Patch flattens the request into app-field keys; repositories translate
// to columns (or apply in place) on their side.
func (r UpdateRequest) Patch() map[string]interface{} {
	patch := make(map[string]interface{})
	if r.Title != nil {
		patch["title"] = *r.Title
	}
	if r.Instructor != nil {
		patch["instructor"] = *r.Instructor
	}
	if r.Thumbnail != nil {
		patch["thumbnail"] = *r.Thumbnail
	}
	if r.Duration != nil {
		patch["duration"] = *r.Duration
	}
	if r.LessonCount != nil {
		patch["lessonCount"] = *r.LessonCount
	}
	if r.Category != nil {
		patch["category"] = *r.Category
	}
	if r.Description != nil {
		patch["description"] = *r.Description
	}
	if r.IsVip != nil {
		patch["isVip"] = *r.IsVip
	}
	if r.Price != nil {
		patch["price"] = *r.Price
	}
	if r.Students != nil {
		patch["students"] = *r.Students
	}
	if r.Rating != nil {
		patch["rating"] = *r.Rating
	}
	return patch
}

package tools

import (
	"github.com/tungtase04539/ai-news/internal/supabase"
	"github.com/tungtase04539/ai-news/internal/utils"
)

const (
	CategoryVideo      = "video"
	CategoryImage      = "image"
	CategoryText       = "text"
	CategoryAudio      = "audio"
	CategoryEfficiency = "efficiency"
)

const (
	table       = "tools"
	defaultLogo = "/images/tools/default.png"
)

type Tool struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Logo        string   `json:"logo"`
	Category    string   `json:"category"`
	URL         string   `json:"url"`
	IsFeatured  bool     `json:"isFeatured"`
	Tags        []string `json:"tags"`
}

type Row struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Logo        string   `json:"logo"`
	Category    string   `json:"category"`
	URL         string   `json:"url"`
	IsFeatured  bool     `json:"is_featured"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

var columns = map[string]string{
	"name":        "name",
	"description": "description",
	"logo":        "logo",
	"category":    "category",
	"url":         "url",
	"isFeatured":  "is_featured",
	"tags":        "tags",
}

func init() {
	supabase.MustValidateMapping(Row{}, columns)
}

func rowToTool(r Row) Tool {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return Tool{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Logo:        r.Logo,
		Category:    r.Category,
		URL:         r.URL,
		IsFeatured:  r.IsFeatured,
		Tags:        tags,
	}
}

func toolToRow(t Tool) Row {
	return Row{
		Name:        t.Name,
		Description: t.Description,
		Logo:        t.Logo,
		Category:    t.Category,
		URL:         t.URL,
		IsFeatured:  t.IsFeatured,
		Tags:        t.Tags,
	}
}

type CreateRequest struct {
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description" validate:"required"`
	Logo        string        `json:"logo"`
	Category    string        `json:"category" validate:"required"`
	URL         string        `json:"url" validate:"required,url"`
	IsFeatured  bool          `json:"isFeatured"`
	Tags        utils.TagList `json:"tags"`
}

type UpdateRequest struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Logo        *string        `json:"logo"`
	Category    *string        `json:"category"`
	URL         *string        `json:"url" validate:"omitempty,url"`
	IsFeatured  *bool          `json:"isFeatured"`
	Tags        *utils.TagList `json:"tags"`
}

func (r UpdateRequest) Patch() map[string]interface{} {
	patch := make(map[string]interface{})
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	if r.Description != nil {
		patch["description"] = *r.Description
	}
	if r.Logo != nil {
		patch["logo"] = *r.Logo
	}
	if r.Category != nil {
		patch["category"] = *r.Category
	}
	if r.URL != nil {
		patch["url"] = *r.URL
	}
	if r.IsFeatured != nil {
		patch["isFeatured"] = *r.IsFeatured
	}
	if r.Tags != nil {
		patch["tags"] = []string(*r.Tags)
	}
	return patch
}

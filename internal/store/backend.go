package store

import (
	"context"
	"time"

	"github.com/tungtase04539/ai-news/internal/apiclient"
	"github.com/tungtase04539/ai-news/internal/articles"
	"github.com/tungtase04539/ai-news/internal/courses"
	"github.com/tungtase04539/ai-news/internal/tools"
)

// Backend is the store's persistence strategy, picked once when a session
// starts. The remote strategy is *apiclient.Client; LocalBackend covers
// demo mode. Store code never branches on which one it got.
type Backend interface {
	ListCourses(ctx context.Context) ([]courses.Course, error)
	CreateCourse(ctx context.Context, req courses.CreateRequest) (courses.Course, error)
	UpdateCourse(ctx context.Context, id string, req courses.UpdateRequest) (courses.Course, error)
	DeleteCourse(ctx context.Context, id string) error

	ListArticles(ctx context.Context) ([]articles.Article, error)
	CreateArticle(ctx context.Context, req articles.CreateRequest) (articles.Article, error)
	UpdateArticle(ctx context.Context, id string, req articles.UpdateRequest) (articles.Article, error)
	DeleteArticle(ctx context.Context, id string) error

	ListTools(ctx context.Context) ([]tools.Tool, error)
	CreateTool(ctx context.Context, req tools.CreateRequest) (tools.Tool, error)
	UpdateTool(ctx context.Context, id string, req tools.UpdateRequest) (tools.Tool, error)
	DeleteTool(ctx context.Context, id string) error
}

var (
	_ Backend = (*apiclient.Client)(nil)
	_ Backend = (*LocalBackend)(nil)
)

// LocalBackend serves demo mode: no network at all, fallback datasets in
// memory, nothing survives a restart. Ids come from the millisecond clock
// through the memory repositories.
type LocalBackend struct {
	courses  *courses.Service
	articles *articles.Service
	tools    *tools.Service
}

func NewLocalBackend(location *time.Location) *LocalBackend {
	return &LocalBackend{
		courses:  courses.NewService(courses.NewMemoryRepository(courses.Fallback)),
		articles: articles.NewService(articles.NewMemoryRepository(articles.Fallback), location),
		tools:    tools.NewService(tools.NewMemoryRepository(tools.Fallback)),
	}
}

func (b *LocalBackend) ListCourses(ctx context.Context) ([]courses.Course, error) {
	return b.courses.List(ctx)
}

func (b *LocalBackend) CreateCourse(ctx context.Context, req courses.CreateRequest) (courses.Course, error) {
	return b.courses.Create(ctx, req)
}

func (b *LocalBackend) UpdateCourse(ctx context.Context, id string, req courses.UpdateRequest) (courses.Course, error) {
	return b.courses.Update(ctx, id, req)
}

func (b *LocalBackend) DeleteCourse(ctx context.Context, id string) error {
	return b.courses.Delete(ctx, id)
}

func (b *LocalBackend) ListArticles(ctx context.Context) ([]articles.Article, error) {
	return b.articles.List(ctx)
}

func (b *LocalBackend) CreateArticle(ctx context.Context, req articles.CreateRequest) (articles.Article, error) {
	return b.articles.Create(ctx, req)
}

func (b *LocalBackend) UpdateArticle(ctx context.Context, id string, req articles.UpdateRequest) (articles.Article, error) {
	return b.articles.Update(ctx, id, req)
}

func (b *LocalBackend) DeleteArticle(ctx context.Context, id string) error {
	return b.articles.Delete(ctx, id)
}

func (b *LocalBackend) ListTools(ctx context.Context) ([]tools.Tool, error) {
	return b.tools.List(ctx)
}

func (b *LocalBackend) CreateTool(ctx context.Context, req tools.CreateRequest) (tools.Tool, error) {
	return b.tools.Create(ctx, req)
}

func (b *LocalBackend) UpdateTool(ctx context.Context, id string, req tools.UpdateRequest) (tools.Tool, error) {
	return b.tools.Update(ctx, id, req)
}

func (b *LocalBackend) DeleteTool(ctx context.Context, id string) error {
	return b.tools.Delete(ctx, id)
}

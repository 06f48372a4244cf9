package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tungtase04539/ai-news/internal/articles"
	"github.com/tungtase04539/ai-news/internal/courses"
	"github.com/tungtase04539/ai-news/internal/tools"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var errBackendDown = errors.New("backend down")

// errBackend fails every call, standing in for an unreachable API.
type errBackend struct{}

func (errBackend) ListCourses(context.Context) ([]courses.Course, error) {
	return nil, errBackendDown
}
func (errBackend) CreateCourse(context.Context, courses.CreateRequest) (courses.Course, error) {
	return courses.Course{}, errBackendDown
}
func (errBackend) UpdateCourse(context.Context, string, courses.UpdateRequest) (courses.Course, error) {
	return courses.Course{}, errBackendDown
}
func (errBackend) DeleteCourse(context.Context, string) error { return errBackendDown }
func (errBackend) ListArticles(context.Context) ([]articles.Article, error) {
	return nil, errBackendDown
}
func (errBackend) CreateArticle(context.Context, articles.CreateRequest) (articles.Article, error) {
	return articles.Article{}, errBackendDown
}
func (errBackend) UpdateArticle(context.Context, string, articles.UpdateRequest) (articles.Article, error) {
	return articles.Article{}, errBackendDown
}
func (errBackend) DeleteArticle(context.Context, string) error { return errBackendDown }
func (errBackend) ListTools(context.Context) ([]tools.Tool, error) {
	return nil, errBackendDown
}
func (errBackend) CreateTool(context.Context, tools.CreateRequest) (tools.Tool, error) {
	return tools.Tool{}, errBackendDown
}
func (errBackend) UpdateTool(context.Context, string, tools.UpdateRequest) (tools.Tool, error) {
	return tools.Tool{}, errBackendDown
}
func (errBackend) DeleteTool(context.Context, string) error { return errBackendDown }

// emptyBackend answers every list with no rows, like a fresh project.
type emptyBackend struct{ errBackend }

func (emptyBackend) ListCourses(context.Context) ([]courses.Course, error) {
	return []courses.Course{}, nil
}
func (emptyBackend) ListArticles(context.Context) ([]articles.Article, error) {
	return []articles.Article{}, nil
}
func (emptyBackend) ListTools(context.Context) ([]tools.Tool, error) {
	return []tools.Tool{}, nil
}

func newLocalStore(t *testing.T) *Store {
	t.Helper()
	s := New(NewLocalBackend(time.UTC), discardLogger())
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestLoadFromLocalBackend(t *testing.T) {
	s := newLocalStore(t)
	assert.Len(t, s.Courses(), len(courses.Fallback))
	assert.Len(t, s.Articles(), len(articles.Fallback))
	assert.Len(t, s.Tools(), len(tools.Fallback))
	assert.NoError(t, s.Err())
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := newLocalStore(t)
	list := s.Courses()
	list[0].Title = "mutated"
	assert.NotEqual(t, "mutated", s.Courses()[0].Title)
}

func TestAddToolPrepends(t *testing.T) {
	s := newLocalStore(t)
	before := len(s.Tools())

	created, err := s.AddTool(context.Background(), tools.CreateRequest{
		Name:        "Claude",
		Description: "Trợ lý AI",
		Category:    tools.CategoryText,
		URL:         "https://claude.ai",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	list := s.Tools()
	require.Len(t, list, before+1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestUpdateCourseSyncsCache(t *testing.T) {
	s := newLocalStore(t)
	id := s.Courses()[0].ID

	title := "Tên mới"
	updated, err := s.UpdateCourse(context.Background(), id, courses.UpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	for _, c := range s.Courses() {
		if c.ID == id {
			assert.Equal(t, title, c.Title)
			return
		}
	}
	t.Fatalf("course %s missing after update", id)
}

func TestArticlesForViewerRedactsVipBodies(t *testing.T) {
	s := newLocalStore(t)
	created, err := s.AddArticle(context.Background(), articles.CreateRequest{
		Title:    "VIP guide",
		Excerpt:  "teaser",
		Content:  "<p>members only</p>",
		Author:   "a",
		Category: articles.CategoryMonetization,
		IsVip:    true,
	})
	require.NoError(t, err)

	for _, a := range s.ArticlesForViewer(false) {
		if a.ID == created.ID {
			assert.Empty(t, a.Content)
			assert.Equal(t, "teaser", a.Excerpt)
		}
	}
	for _, a := range s.ArticlesForViewer(true) {
		if a.ID == created.ID {
			assert.Equal(t, "<p>members only</p>", a.Content)
		}
	}
}

func TestAddArticleCachesSanitizedContent(t *testing.T) {
	s := newLocalStore(t)
	created, err := s.AddArticle(context.Background(), articles.CreateRequest{
		Title:    "Dirty",
		Excerpt:  "e",
		Content:  `<p>ok</p><script>alert(1)</script>`,
		Author:   "a",
		Category: articles.CategoryNews,
	})
	require.NoError(t, err)
	assert.NotContains(t, created.Content, "script")

	// The mutating session reads the same record straight from the cache.
	for _, a := range s.ArticlesForViewer(false) {
		if a.ID == created.ID {
			assert.NotContains(t, a.Content, "script")
			assert.Contains(t, a.Content, "<p>ok</p>")
			return
		}
	}
	t.Fatalf("article %s missing from cache", created.ID)
}

func TestDeleteArticleRemovesFromCache(t *testing.T) {
	s := newLocalStore(t)
	id := s.Articles()[0].ID
	before := len(s.Articles())

	require.NoError(t, s.DeleteArticle(context.Background(), id))
	assert.Len(t, s.Articles(), before-1)
	for _, a := range s.Articles() {
		assert.NotEqual(t, id, a.ID)
	}
}

func TestLoadFailureKeepsFallback(t *testing.T) {
	s := New(errBackend{}, discardLogger())
	err := s.Load(context.Background())
	assert.ErrorIs(t, err, errBackendDown)
	assert.ErrorIs(t, s.Err(), errBackendDown)

	// The UI still has something to show.
	assert.Len(t, s.Courses(), len(courses.Fallback))
	assert.Len(t, s.Articles(), len(articles.Fallback))
	assert.Len(t, s.Tools(), len(tools.Fallback))
}

func TestEmptyRemoteKeepsFallback(t *testing.T) {
	s := New(emptyBackend{}, discardLogger())
	require.NoError(t, s.Load(context.Background()))
	assert.NoError(t, s.Err())
	assert.Len(t, s.Courses(), len(courses.Fallback))
}

func TestMutationFailureLeavesCacheAlone(t *testing.T) {
	s := New(errBackend{}, discardLogger())
	before := len(s.Courses())

	_, err := s.AddCourse(context.Background(), courses.CreateRequest{
		Title: "x", Instructor: "a", Duration: "1 giờ", LessonCount: 1,
		Category: courses.CategoryAIBasics, Description: "d",
	})
	assert.ErrorIs(t, err, errBackendDown)
	assert.Len(t, s.Courses(), before)
	// Mutation failures surface to the caller, not through the load flag.
	assert.NoError(t, s.Err())
}

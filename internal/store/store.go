package store

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tungtase04539/ai-news/internal/articles"
	"github.com/tungtase04539/ai-news/internal/courses"
	"github.com/tungtase04539/ai-news/internal/tools"
)

// Store is the session-scoped source of truth for the three collections.
// It starts on the built-in fallback datasets and Load swaps in whatever
// the backend returns; a failed or empty fetch keeps the fallback so the
// UI never renders an empty catalog. Mutations go through the backend
// first and patch the cache from the returned record, newest first.
//
// One instance per session, constructed explicitly and handed to the
// presentation layer; there is no package-level state.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	log     *slog.Logger

	courseList  []courses.Course
	articleList []articles.Article
	toolList    []tools.Tool
	loadErr     error
}

func New(backend Backend, log *slog.Logger) *Store {
	s := &Store{
		backend:     backend,
		log:         log,
		courseList:  make([]courses.Course, len(courses.Fallback)),
		articleList: make([]articles.Article, len(articles.Fallback)),
		toolList:    make([]tools.Tool, len(tools.Fallback)),
	}
	copy(s.courseList, courses.Fallback)
	copy(s.articleList, articles.Fallback)
	copy(s.toolList, tools.Fallback)
	return s
}

// Load fetches the three collections concurrently. Each fetch stands on
// its own: a non-empty success replaces that collection, anything else
// leaves the fallback in place. Only this bulk load sets the error flag;
// it is the one failure the UI surfaces.
func (s *Store) Load(ctx context.Context) error {
	var (
		courseList  []courses.Course
		articleList []articles.Article
		toolList    []tools.Tool
		courseErr   error
		articleErr  error
		toolErr     error
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		courseList, courseErr = s.backend.ListCourses(ctx)
		return nil
	})
	g.Go(func() error {
		articleList, articleErr = s.backend.ListArticles(ctx)
		return nil
	})
	g.Go(func() error {
		toolList, toolErr = s.backend.ListTools(ctx)
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadErr = nil
	if courseErr == nil && len(courseList) > 0 {
		s.courseList = courseList
	}
	if articleErr == nil && len(articleList) > 0 {
		s.articleList = articleList
	}
	if toolErr == nil && len(toolList) > 0 {
		s.toolList = toolList
	}
	for _, err := range []error{courseErr, articleErr, toolErr} {
		if err != nil {
			s.log.Error("store load: fetch failed", slog.String("error", err.Error()))
			s.loadErr = err
			break
		}
	}
	return s.loadErr
}

// Refresh is a full reload; nothing triggers it automatically.
func (s *Store) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// Err reports the last bulk-load failure, if any.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

func (s *Store) Courses() []courses.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]courses.Course, len(s.courseList))
	copy(out, s.courseList)
	return out
}

func (s *Store) Articles() []articles.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]articles.Article, len(s.articleList))
	copy(out, s.articleList)
	return out
}

// ArticlesForViewer is the read path the rendering layer uses: VIP bodies
// are blanked for non-VIP viewers before anything leaves the store.
func (s *Store) ArticlesForViewer(viewerIsVip bool) []articles.Article {
	out := s.Articles()
	for i := range out {
		out[i] = out[i].ForViewer(viewerIsVip)
	}
	return out
}

func (s *Store) Tools() []tools.Tool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tools.Tool, len(s.toolList))
	copy(out, s.toolList)
	return out
}

func (s *Store) AddCourse(ctx context.Context, req courses.CreateRequest) (courses.Course, error) {
	created, err := s.backend.CreateCourse(ctx, req)
	if err != nil {
		return courses.Course{}, err
	}
	s.mu.Lock()
	s.courseList = append([]courses.Course{created}, s.courseList...)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateCourse(ctx context.Context, id string, req courses.UpdateRequest) (courses.Course, error) {
	updated, err := s.backend.UpdateCourse(ctx, id, req)
	if err != nil {
		return courses.Course{}, err
	}
	s.mu.Lock()
	for i := range s.courseList {
		if s.courseList[i].ID == id {
			s.courseList[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteCourse(ctx context.Context, id string) error {
	if err := s.backend.DeleteCourse(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.courseList = filterCourses(s.courseList, id)
	s.mu.Unlock()
	return nil
}

func (s *Store) AddArticle(ctx context.Context, req articles.CreateRequest) (articles.Article, error) {
	created, err := s.backend.CreateArticle(ctx, req)
	if err != nil {
		return articles.Article{}, err
	}
	s.mu.Lock()
	s.articleList = append([]articles.Article{created}, s.articleList...)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateArticle(ctx context.Context, id string, req articles.UpdateRequest) (articles.Article, error) {
	updated, err := s.backend.UpdateArticle(ctx, id, req)
	if err != nil {
		return articles.Article{}, err
	}
	s.mu.Lock()
	for i := range s.articleList {
		if s.articleList[i].ID == id {
			s.articleList[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteArticle(ctx context.Context, id string) error {
	if err := s.backend.DeleteArticle(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.articleList = filterArticles(s.articleList, id)
	s.mu.Unlock()
	return nil
}

func (s *Store) AddTool(ctx context.Context, req tools.CreateRequest) (tools.Tool, error) {
	created, err := s.backend.CreateTool(ctx, req)
	if err != nil {
		return tools.Tool{}, err
	}
	s.mu.Lock()
	s.toolList = append([]tools.Tool{created}, s.toolList...)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateTool(ctx context.Context, id string, req tools.UpdateRequest) (tools.Tool, error) {
	updated, err := s.backend.UpdateTool(ctx, id, req)
	if err != nil {
		return tools.Tool{}, err
	}
	s.mu.Lock()
	for i := range s.toolList {
		if s.toolList[i].ID == id {
			s.toolList[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteTool(ctx context.Context, id string) error {
	if err := s.backend.DeleteTool(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.toolList = filterTools(s.toolList, id)
	s.mu.Unlock()
	return nil
}

func filterCourses(items []courses.Course, id string) []courses.Course {
	out := items[:0]
	for _, c := range items {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

func filterArticles(items []articles.Article, id string) []articles.Article {
	out := items[:0]
	for _, a := range items {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}

func filterTools(items []tools.Tool, id string) []tools.Tool {
	out := items[:0]
	for _, t := range items {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

package articles

import (
	"context"
	"strings"
	"time"

	"github.com/tungtase04539/ai-news/internal/content"
)

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

// List sanitizes every article body on the way out. Editor HTML is stored
// verbatim and treated as untrusted input on the read path.
func (s *Service) List(ctx context.Context) ([]Article, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Content = content.Sanitize(items[i].Content)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (Article, error) {
	item, err := s.repo.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		return Article{}, err
	}
	item.Content = content.Sanitize(item.Content)
	return item, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Article, error) {
	article := Article{
		Title:     strings.TrimSpace(req.Title),
		Excerpt:   strings.TrimSpace(req.Excerpt),
		Content:   req.Content,
		Thumbnail: strings.TrimSpace(req.Thumbnail),
		Author:    strings.TrimSpace(req.Author),
		Date:      strings.TrimSpace(req.Date),
		Category:  strings.TrimSpace(req.Category),
		IsVip:     req.IsVip,
		Tags:      []string(req.Tags),
	}
	if article.Thumbnail == "" {
		article.Thumbnail = defaultThumbnail
	}
	if article.Date == "" {
		article.Date = time.Now().In(s.location).Format("2006-01-02")
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}
	if req.Views != nil {
		article.Views = *req.Views
	}
	if req.Likes != nil {
		article.Likes = *req.Likes
	}
	if req.Comments != nil {
		article.Comments = *req.Comments
	}
	created, err := s.repo.Create(ctx, article)
	if err != nil {
		return Article{}, err
	}
	created.Content = content.Sanitize(created.Content)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Article, error) {
	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), req.Patch())
	if err != nil {
		return Article{}, err
	}
	updated.Content = content.Sanitize(updated.Content)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

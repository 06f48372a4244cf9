package courses

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Course, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Course, error) {
	return s.repo.Get(ctx, strings.TrimSpace(id))
}

// Create fills entity defaults for omitted optional fields before handing
// the record to the repository. The backend (or the demo clock) assigns
// the id.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Course, error) {
	course := Course{
		Title:       strings.TrimSpace(req.Title),
		Instructor:  strings.TrimSpace(req.Instructor),
		Thumbnail:   strings.TrimSpace(req.Thumbnail),
		Duration:    strings.TrimSpace(req.Duration),
		LessonCount: req.LessonCount,
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		IsVip:       req.IsVip,
		Rating:      defaultRating,
	}
	if course.Thumbnail == "" {
		course.Thumbnail = defaultThumbnail
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Students != nil {
		course.Students = *req.Students
	}
	if req.Rating != nil {
		course.Rating = *req.Rating
	}
	return s.repo.Create(ctx, course)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Course, error) {
	return s.repo.Update(ctx, strings.TrimSpace(id), req.Patch())
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

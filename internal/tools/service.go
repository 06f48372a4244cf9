package tools

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

func (s *Service) List(ctx context.Context) ([]Tool, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Tool, error) {
	return s.repo.Get(ctx, strings.TrimSpace(id))
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Tool, error) {
	tool := Tool{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Logo:        strings.TrimSpace(req.Logo),
		Category:    strings.TrimSpace(req.Category),
		URL:         strings.TrimSpace(req.URL),
		IsFeatured:  req.IsFeatured,
		Tags:        []string(req.Tags),
	}
	if tool.Logo == "" {
		tool.Logo = defaultLogo
	}
	if tool.Tags == nil {
		tool.Tags = []string{}
	}
	return s.repo.Create(ctx, tool)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Tool, error) {
	return s.repo.Update(ctx, strings.TrimSpace(id), req.Patch())
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

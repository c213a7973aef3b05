package news

import (
	"context"

	"github.com/Tahsina2226/course-event-management/core"
)

type (
	Repository interface {
		ListNews(ctx context.Context) ([]News, error)
	}

	// Service serves the read-only news feed through a list cache.
	Service struct {
		repo  Repository
		cache core.ListCache[News]
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) List(ctx context.Context) ([]News, error) {
	return svc.cache.Get(ctx, svc.repo.ListNews)
}

func (svc *Service) Refresh(ctx context.Context) ([]News, error) {
	return svc.cache.Refresh(ctx, svc.repo.ListNews)
}

func (svc *Service) State() core.ListState {
	return svc.cache.State()
}

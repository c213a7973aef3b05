package event

import (
	"context"

	"github.com/Tahsina2226/course-event-management/core"
)

type (
	Repository interface {
		ListEvents(ctx context.Context) ([]Event, error)
	}

	// Service serves the read-only event feed through a list cache.
	Service struct {
		repo  Repository
		cache core.ListCache[Event]
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) List(ctx context.Context) ([]Event, error) {
	return svc.cache.Get(ctx, svc.repo.ListEvents)
}

func (svc *Service) Refresh(ctx context.Context) ([]Event, error) {
	return svc.cache.Refresh(ctx, svc.repo.ListEvents)
}

func (svc *Service) State() core.ListState {
	return svc.cache.State()
}

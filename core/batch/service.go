package batch

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/Tahsina2226/course-event-management/core"
)

var (
	// errors
	ErrNotFound    = errors.New("batch not found")
	ErrEmptyUpdate = errors.New("nothing to update")
)

type (
	Repository interface {
		ListBatches(ctx context.Context) ([]Batch, error)
		CreateBatch(ctx context.Context, nb NewBatch) (Batch, error)
		UpdateBatch(ctx context.Context, id int, ub UpdateBatch) (Batch, error)
		DeleteBatch(ctx context.Context, id int) error
	}

	// Service serves the batch list through a tag-invalidated cache:
	// any successful mutation marks the list stale so the next read is fresh.
	Service struct {
		repo     Repository
		validate *validator.Validate
		cache    core.ListCache[Batch]
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) List(ctx context.Context) ([]Batch, error) {
	return svc.cache.Get(ctx, svc.repo.ListBatches)
}

func (svc *Service) Refresh(ctx context.Context) ([]Batch, error) {
	return svc.cache.Refresh(ctx, svc.repo.ListBatches)
}

func (svc *Service) State() core.ListState {
	return svc.cache.State()
}

func (svc *Service) GetByID(ctx context.Context, id int) (Batch, error) {
	batches, err := svc.List(ctx)
	if err != nil {
		return Batch{}, err
	}
	for _, b := range batches {
		if b.ID == id {
			return b, nil
		}
	}
	return Batch{}, ErrNotFound
}

func (svc *Service) Create(ctx context.Context, nb NewBatch) (Batch, error) {
	if err := nb.Validate(svc.validate); err != nil {
		return Batch{}, err
	}
	b, err := svc.repo.CreateBatch(ctx, nb)
	if err != nil {
		return Batch{}, err
	}
	svc.cache.Invalidate()
	return b, nil
}

func (svc *Service) Update(ctx context.Context, id int, ub UpdateBatch) (Batch, error) {
	if err := ub.Validate(svc.validate); err != nil {
		return Batch{}, err
	}
	if ub.IsEmpty() {
		return Batch{}, core.NewValidationError(ErrEmptyUpdate)
	}
	b, err := svc.repo.UpdateBatch(ctx, id, ub)
	if err != nil {
		return Batch{}, err
	}
	svc.cache.Invalidate()
	return b, nil
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	if err := svc.repo.DeleteBatch(ctx, id); err != nil {
		return err
	}
	svc.cache.Invalidate()
	return nil
}

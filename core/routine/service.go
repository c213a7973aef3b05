package routine

import (
	"context"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Tahsina2226/course-event-management/core"
)

var (
	// errors
	ErrNotFound    = errors.New("routine not found")
	ErrEmptyUpdate = errors.New("nothing to update")
)

type (
	Repository interface {
		// ListRoutines returns all routines, or only those of `department`
		// when it is non-empty.
		ListRoutines(ctx context.Context, department string) ([]Routine, error)
		CreateRoutine(ctx context.Context, nr NewRoutine) (Routine, error)
		UpdateRoutine(ctx context.Context, id int, ur UpdateRoutine) (Routine, error)
		DeleteRoutine(ctx context.Context, id int) error
	}

	// Service caches one list per department filter; a mutation
	// invalidates every filter since routines move across filters.
	Service struct {
		repo     Repository
		validate *validator.Validate

		mu     sync.Mutex
		caches map[string]*core.ListCache[Routine]
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate, caches: make(map[string]*core.ListCache[Routine])}
}

func (svc *Service) cacheFor(department string) *core.ListCache[Routine] {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	c, ok := svc.caches[department]
	if !ok {
		c = new(core.ListCache[Routine])
		svc.caches[department] = c
	}
	return c
}

func (svc *Service) invalidateAll() {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	for _, c := range svc.caches {
		c.Invalidate()
	}
}

func (svc *Service) fetch(department string) core.FetchFunc[Routine] {
	return func(ctx context.Context) ([]Routine, error) {
		return svc.repo.ListRoutines(ctx, department)
	}
}

// List returns the routines of `department`, or all when it is empty.
func (svc *Service) List(ctx context.Context, department string) ([]Routine, error) {
	department = core.CleanString(department)
	return svc.cacheFor(department).Get(ctx, svc.fetch(department))
}

func (svc *Service) Refresh(ctx context.Context, department string) ([]Routine, error) {
	department = core.CleanString(department)
	return svc.cacheFor(department).Refresh(ctx, svc.fetch(department))
}

func (svc *Service) State(department string) core.ListState {
	return svc.cacheFor(core.CleanString(department)).State()
}

func (svc *Service) Create(ctx context.Context, nr NewRoutine) (Routine, error) {
	if err := nr.Validate(svc.validate); err != nil {
		return Routine{}, err
	}
	r, err := svc.repo.CreateRoutine(ctx, nr)
	if err != nil {
		return Routine{}, err
	}
	svc.invalidateAll()
	return r, nil
}

func (svc *Service) Update(ctx context.Context, id int, ur UpdateRoutine) (Routine, error) {
	if err := ur.Validate(svc.validate); err != nil {
		return Routine{}, err
	}
	if ur.IsEmpty() {
		return Routine{}, core.NewValidationError(ErrEmptyUpdate)
	}
	r, err := svc.repo.UpdateRoutine(ctx, id, ur)
	if err != nil {
		return Routine{}, err
	}
	svc.invalidateAll()
	return r, nil
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	if err := svc.repo.DeleteRoutine(ctx, id); err != nil {
		return err
	}
	svc.invalidateAll()
	return nil
}

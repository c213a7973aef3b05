package routine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tahsina2226/course-event-management/core"
)

type fakeRepo struct {
	routines  []Routine
	listCalls map[string]int
	seq       int
}

func newFakeRepo(routines ...Routine) *fakeRepo {
	seq := 0
	for _, r := range routines {
		if r.ID > seq {
			seq = r.ID
		}
	}
	return &fakeRepo{routines: routines, listCalls: make(map[string]int), seq: seq}
}

// filtering happens on the backend; the fake only records which filter was asked for
func (f *fakeRepo) ListRoutines(ctx context.Context, department string) ([]Routine, error) {
	f.listCalls[department]++
	return f.routines, nil
}

func (f *fakeRepo) CreateRoutine(ctx context.Context, nr NewRoutine) (Routine, error) {
	f.seq++
	r := Routine{ID: f.seq, CourseName: nr.CourseName, Day: nr.Day, Time: nr.Time, Room: nr.Room, BatchID: nr.BatchID}
	f.routines = append(f.routines, r)
	return r, nil
}

func (f *fakeRepo) UpdateRoutine(ctx context.Context, id int, ur UpdateRoutine) (Routine, error) {
	return Routine{ID: id}, nil
}

func (f *fakeRepo) DeleteRoutine(ctx context.Context, id int) error { return nil }

func setup(t *testing.T, repo Repository) *Service {
	t.Helper()
	validate, translator := core.NewValidator()
	RegisterValidators(validate, translator)
	return NewService(repo, validate)
}

func TestService_List_cachesPerFilter(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo(
		Routine{ID: 1, CourseName: "Algorithms", Day: "Monday", Time: "10:00", Room: "A-301", BatchID: 1},
		Routine{ID: 2, CourseName: "Circuits", Day: "Tuesday", Time: "09:00", Room: "B-101", BatchID: 3},
	)
	svc := setup(t, repo)

	all, err := svc.List(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.List(ctx, "EEE")
	assert.NoError(t, err)

	// each filter has its own cache entry
	_, _ = svc.List(ctx, "")
	_, _ = svc.List(ctx, "EEE")
	assert.Equal(t, 1, repo.listCalls[""])
	assert.Equal(t, 1, repo.listCalls["EEE"])
}

func TestService_mutationInvalidatesEveryFilter(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo(Routine{ID: 1, CourseName: "Algorithms", Day: "Monday", Time: "10:00", Room: "A-301", BatchID: 1})
	svc := setup(t, repo)

	_, _ = svc.List(ctx, "")
	_, _ = svc.List(ctx, "CS")

	_, err := svc.Create(ctx, NewRoutine{CourseName: "Databases", Day: "Wednesday", Time: "14:00", Room: "A-302", BatchID: 1})
	assert.NoError(t, err)

	_, _ = svc.List(ctx, "")
	_, _ = svc.List(ctx, "CS")
	assert.Equal(t, 2, repo.listCalls[""])
	assert.Equal(t, 2, repo.listCalls["CS"])
}

func TestService_Create_validatesWeekday(t *testing.T) {
	repo := newFakeRepo()
	svc := setup(t, repo)

	_, err := svc.Create(context.Background(), NewRoutine{CourseName: "Algorithms", Day: "Fifthday", Time: "10:00", Room: "A-301", BatchID: 1})
	assert.Error(t, err)
	assert.Equal(t, 0, repo.seq)

	_, err = svc.Create(context.Background(), NewRoutine{CourseName: "Algorithms", Day: "Monday", Time: "10:00", Room: "A-301", BatchID: 1})
	assert.NoError(t, err)
}

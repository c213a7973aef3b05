package echoapi

import (
	"errors"
	"sort"
	"sync"

	"github.com/volatiletech/null/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/Tahsina2226/course-event-management/core/batch"
	"github.com/Tahsina2226/course-event-management/core/event"
	"github.com/Tahsina2226/course-event-management/core/news"
	"github.com/Tahsina2226/course-event-management/core/routine"
)

var (
	// errors
	errNotFound           = errors.New("not found")
	errEmailExists        = errors.New("an account with this email already exists")
	errDepartmentConflict = errors.New("already enrolled in a different department")
	errUnknownBatch       = errors.New("unknown batch")
)

type (
	Account struct {
		Name         string
		Email        string
		Role         string
		PasswordHash []byte
	}

	Enrollment struct {
		Email      string
		BatchID    int
		Department string
	}

	// Store is the stub backend's in-memory state, seeded with sample
	// data so the portal works out of the box.
	Store struct {
		mu          sync.RWMutex
		accounts    map[string]*Account
		batches     map[int]*batch.Batch
		routines    map[int]*routine.Routine
		events      []event.Event
		news        []news.News
		enrollments map[string]*Enrollment
		batchSeq    int
		routineSeq  int
	}
)

func (a *Account) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

func (a *Account) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(pwd))
}

func NewStore() *Store {
	s := &Store{
		accounts:    make(map[string]*Account),
		batches:     make(map[int]*batch.Batch),
		routines:    make(map[int]*routine.Routine),
		enrollments: make(map[string]*Enrollment),
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	admin := &Account{Name: "Portal Admin", Email: "admin@university.edu", Role: "admin"}
	_ = admin.SetPassword("admin1234")
	s.accounts[admin.Email] = admin

	for _, b := range []batch.Batch{
		{Name: "CS-2024", Department: "CS", Semester: "Fall 2024"},
		{Name: "CS-2025", Department: "CS", Semester: "Spring 2025"},
		{Name: "EEE-2024", Department: "EEE", Semester: "Fall 2024"},
	} {
		s.batchSeq++
		b.ID = s.batchSeq
		cp := b
		s.batches[b.ID] = &cp
	}
	for _, r := range []routine.Routine{
		{CourseName: "Algorithms", Day: "Monday", Time: "10:00", Room: "A-301", BatchID: 1},
		{CourseName: "Databases", Day: "Wednesday", Time: "14:00", Room: "A-302", BatchID: 1},
		{CourseName: "Circuits", Day: "Tuesday", Time: "09:00", Room: "B-101", BatchID: 3},
	} {
		s.routineSeq++
		r.ID = s.routineSeq
		cp := r
		s.routines[r.ID] = &cp
	}
	s.events = []event.Event{
		{ID: 1, Title: "Orientation Day", Description: "Welcome session for new students", Location: "Main Auditorium", Date: "2025-09-10"},
		{ID: 2, Title: "Tech Fest", Description: "Annual technology festival", Location: "CS Building", Date: "2025-10-02"},
	}
	s.news = []news.News{
		{ID: 1, Title: "New CS lab opened", Description: "A second programming lab is now available.", Category: null.StringFrom("Campus"), Date: null.StringFrom("2025-08-20")},
		{ID: 2, Title: "Semester results published", Description: "Spring results are up on the notice board."},
	}
}

// accounts

func (s *Store) GetAccount(email string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if acct, ok := s.accounts[email]; ok {
		return acct, nil
	}
	return nil, errNotFound
}

func (s *Store) CreateAccount(acct *Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[acct.Email]; ok {
		return errEmailExists
	}
	s.accounts[acct.Email] = acct
	return nil
}

// batches

func (s *Store) ListBatches() []batch.Batch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	batches := make([]batch.Batch, 0, len(s.batches))
	for _, b := range s.batches {
		batches = append(batches, *b)
	}
	sort.Slice(batches, func(i, j int) bool { return batches[i].ID < batches[j].ID })
	return batches
}

func (s *Store) GetBatch(id int) (batch.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.batches[id]; ok {
		return *b, nil
	}
	return batch.Batch{}, errNotFound
}

func (s *Store) CreateBatch(nb batch.NewBatch) batch.Batch {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batchSeq++
	b := batch.Batch{ID: s.batchSeq, Name: nb.Name, Department: nb.Department, Semester: nb.Semester}
	s.batches[b.ID] = &b
	return b
}

func (s *Store) UpdateBatch(id int, ub batch.UpdateBatch) (batch.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.batches[id]
	if !ok {
		return batch.Batch{}, errNotFound
	}
	if ub.Name != "" {
		b.Name = ub.Name
	}
	if ub.Department != "" {
		b.Department = ub.Department
	}
	if ub.Semester != "" {
		b.Semester = ub.Semester
	}
	return *b, nil
}

func (s *Store) DeleteBatch(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.batches[id]; !ok {
		return errNotFound
	}
	delete(s.batches, id)
	return nil
}

// routines

func (s *Store) ListRoutines(department string) []routine.Routine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	routines := make([]routine.Routine, 0, len(s.routines))
	for _, r := range s.routines {
		if department != "" {
			b, ok := s.batches[r.BatchID]
			if !ok || b.Department != department {
				continue
			}
		}
		routines = append(routines, *r)
	}
	sort.Slice(routines, func(i, j int) bool { return routines[i].ID < routines[j].ID })
	return routines
}

func (s *Store) CreateRoutine(nr routine.NewRoutine) (routine.Routine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.batches[nr.BatchID]; !ok {
		return routine.Routine{}, errUnknownBatch
	}
	s.routineSeq++
	r := routine.Routine{
		ID:         s.routineSeq,
		CourseName: nr.CourseName,
		Day:        nr.Day,
		Time:       nr.Time,
		Room:       nr.Room,
		BatchID:    nr.BatchID,
	}
	s.routines[r.ID] = &r
	return r, nil
}

func (s *Store) UpdateRoutine(id int, ur routine.UpdateRoutine) (routine.Routine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.routines[id]
	if !ok {
		return routine.Routine{}, errNotFound
	}
	if ur.BatchID != 0 {
		if _, ok := s.batches[ur.BatchID]; !ok {
			return routine.Routine{}, errUnknownBatch
		}
		r.BatchID = ur.BatchID
	}
	if ur.CourseName != "" {
		r.CourseName = ur.CourseName
	}
	if ur.Day != "" {
		r.Day = ur.Day
	}
	if ur.Time != "" {
		r.Time = ur.Time
	}
	if ur.Room != "" {
		r.Room = ur.Room
	}
	return *r, nil
}

func (s *Store) DeleteRoutine(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.routines[id]; !ok {
		return errNotFound
	}
	delete(s.routines, id)
	return nil
}

// feeds

func (s *Store) ListEvents() []event.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events
}

func (s *Store) ListNews() []news.News {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.news
}

// enrollments

func (s *Store) GetEnrollment(email string) (*Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if enr, ok := s.enrollments[email]; ok {
		return enr, nil
	}
	return nil, errNotFound
}

// RecordEnrollment enforces the one-department rule server-side too:
// the stub is stricter than the client assumes of the real backend.
func (s *Store) RecordEnrollment(email string, batchID int) (*Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.batches[batchID]
	if !ok {
		return nil, errUnknownBatch
	}
	if existing, ok := s.enrollments[email]; ok && existing.Department != b.Department {
		return nil, errDepartmentConflict
	}
	enr := &Enrollment{Email: email, BatchID: batchID, Department: b.Department}
	s.enrollments[email] = enr
	return enr, nil
}

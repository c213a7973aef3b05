// Package inmem is a map-backed stand-in for localstore, for tests.
package inmem

import (
	"sync"

	"github.com/Tahsina2226/course-event-management/core/session"
)

type sessionRepository struct {
	mu   sync.RWMutex
	sess session.Session
}

var _ session.Repository = (*sessionRepository)(nil)

func NewSessionRepository() session.Repository {
	return &sessionRepository{sess: session.Session{Role: session.RoleGuest}}
}

func (repo *sessionRepository) Load() (session.Session, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.sess, nil
}

func (repo *sessionRepository) Save(sess session.Session) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	sess.EnrolledDepartment = repo.sess.EnrolledDepartment
	repo.sess = sess
	return nil
}

func (repo *sessionRepository) Clear() error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.sess = session.Session{
		Role:               session.RoleGuest,
		EnrolledDepartment: repo.sess.EnrolledDepartment,
	}
	return nil
}

func (repo *sessionRepository) SetEnrolledDepartment(department string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.sess.EnrolledDepartment = department
	return nil
}

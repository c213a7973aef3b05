package localstore

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Tahsina2226/course-event-management/core/session"
)

// Storage keys; names are part of the on-disk contract.
const (
	keyToken              = "token"
	keyEmail              = "email"
	keyRole               = "role"
	keyDepartment         = "department"
	keyEnrolledDepartment = "enrolledDepartment"
)

// identityKeys are the keys written at login and removed at logout.
// keyEnrolledDepartment is deliberately not among them.
var identityKeys = []string{keyToken, keyEmail, keyRole, keyDepartment}

type sessionRepository struct {
	db *sqlx.DB
}

var _ session.Repository = (*sessionRepository)(nil)

func NewSessionRepository(db *sqlx.DB) session.Repository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) Load() (session.Session, error) {
	rows, err := repo.db.Queryx(`SELECT key, value FROM portal_state`)
	if err != nil {
		return session.Session{}, errors.Wrap(err, "reading portal state")
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return session.Session{}, errors.Wrap(err, "scanning portal state")
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return session.Session{}, errors.Wrap(err, "reading portal state")
	}

	sess := session.Session{
		Token:              values[keyToken],
		Email:              values[keyEmail],
		Department:         values[keyDepartment],
		EnrolledDepartment: values[keyEnrolledDepartment],
	}
	if sess.Token != "" {
		sess.Role = session.ParseRole(values[keyRole])
	} else {
		sess.Role = session.RoleGuest
	}
	return sess, nil
}

func (repo *sessionRepository) Save(sess session.Session) error {
	tx, err := repo.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "beginning tx")
	}
	defer tx.Rollback()

	values := map[string]string{
		keyToken:      sess.Token,
		keyEmail:      sess.Email,
		keyRole:       sess.Role.String(),
		keyDepartment: sess.Department,
	}
	for key, value := range values {
		if value == "" {
			if _, err := tx.Exec(`DELETE FROM portal_state WHERE key = ?`, key); err != nil {
				return errors.Wrapf(err, "removing %s", key)
			}
			continue
		}
		if err := upsert(tx, key, value); err != nil {
			return err
		}
	}
	return errors.Wrap(tx.Commit(), "committing session")
}

func (repo *sessionRepository) Clear() error {
	query, args, err := sqlx.In(`DELETE FROM portal_state WHERE key IN (?)`, identityKeys)
	if err != nil {
		return errors.Wrap(err, "building clear query")
	}
	if _, err := repo.db.Exec(repo.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "clearing session")
	}
	return nil
}

func (repo *sessionRepository) SetEnrolledDepartment(department string) error {
	tx, err := repo.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "beginning tx")
	}
	defer tx.Rollback()
	if err := upsert(tx, keyEnrolledDepartment, department); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "committing enrolled department")
}

func upsert(tx *sqlx.Tx, key, value string) error {
	_, err := tx.Exec(
		`INSERT INTO portal_state (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return errors.Wrapf(err, "writing %s", key)
}

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Users is the store contract the signup and signin flows depend on.
//
// FindForRegistration runs both unique lookups against one consistent
// snapshot. Register relies on the table's uniqueness constraints and
// reports violations as ErrUserExists, which is the authoritative duplicate
// guard, the pre check can always lose a race to a concurrent insert.
type Users interface {
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*User, error)
	FindForRegistration(ctx context.Context, email, username string) (byEmail *User, byUsername *User, err error)
	Register(ctx context.Context, user *User) (*User, error)
}

type users struct {
	repository.Repository[*User]
	db *bun.DB
}

var _ Users = (*users)(nil)

// NewUsersRepository will create a bun backed Users store
func NewUsersRepository(db *bun.DB) Users {
	repo := repository.NewRepository[*User](db, repository.ModelHandlers[*User]{
		NewRecord: func() *User { return &User{} },
		GetID: func(u *User) uuid.UUID {
			if u == nil {
				return uuid.Nil
			}
			return u.ID
		},
		SetID: func(u *User, id uuid.UUID) {
			if u != nil {
				u.ID = id
			}
		},
		GetIdentifier: func() string {
			return "email"
		},
	})

	return &users{
		Repository: repo,
		db:         db,
	}
}

func (a *users) FindByUsernameOrEmail(ctx context.Context, identifier string) (*User, error) {
	record := &User{}
	err := a.db.NewSelect().
		Model(record).
		Where("?TableAlias.email = ?", identifier).
		WhereOr("?TableAlias.username = ?", identifier).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return record, nil
}

func (a *users) FindForRegistration(ctx context.Context, email, username string) (*User, *User, error) {
	var byEmail, byUsername *User

	err := a.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var err error
		if byEmail, err = findOneTx(ctx, tx, "email", email); err != nil {
			return err
		}
		byUsername, err = findOneTx(ctx, tx, "username", username)
		return err
	})

	if err != nil {
		return nil, nil, err
	}

	return byEmail, byUsername, nil
}

func (a *users) Register(ctx context.Context, user *User) (*User, error) {
	prepareUserDefaults(user)

	record, err := a.Repository.Create(ctx, user)
	if err != nil {
		if IsUniqueConstraintError(err) {
			return nil, fmt.Errorf("%w: %v", ErrUserExists, err)
		}
		return nil, err
	}

	return record, nil
}

func findOneTx(ctx context.Context, tx bun.IDB, column, value string) (*User, error) {
	record := &User{}
	err := tx.NewSelect().
		Model(record).
		Where(fmt.Sprintf("?TableAlias.%s = ?", column), value).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if isRecordNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return record, nil
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || repository.IsRecordNotFound(err)
}

func prepareUserDefaults(record *User) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
}

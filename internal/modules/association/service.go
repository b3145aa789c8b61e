package association

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"swapi/internal/pkg/apierr"
	"swapi/internal/repository"
)

// Side is one foreign key column of an association table.
type Side struct {
	Field  string
	Exists func(db *gorm.DB, id int64) (bool, error)
}

// Kind describes one association table with row type A.
type Kind[A any] struct {
	// Path is the table segment, e.g. "starships_films".
	Path string
	// Label is used in update and delete messages, e.g. "starship/film".
	Label       string
	Left, Right Side
	// Keys returns pointers to the left and right ids of a row.
	Keys func(a *A) (left, right *int64)
}

// Change carries the foreign keys present in an update body.
type Change struct {
	Left, Right *int64
}

// Service implements the operations of one association table.
type Service[A any] struct {
	store *repository.Store
	kind  Kind[A]
}

func NewService[A any](store *repository.Store, kind Kind[A]) *Service[A] {
	return &Service[A]{store: store, kind: kind}
}

func (s *Service[A]) All(ctx context.Context) ([]A, error) {
	return repository.NewTable[A](s.store.Conn(ctx)).All()
}

// Add links left to right. Both ids must resolve and the pair must be new.
func (s *Service[A]) Add(ctx context.Context, left, right int64) error {
	return s.store.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.resolve(tx, s.kind.Left, left); err != nil {
			return err
		}
		if err := s.resolve(tx, s.kind.Right, right); err != nil {
			return err
		}

		var a A
		l, r := s.kind.Keys(&a)
		*l, *r = left, right
		err := repository.NewTable[A](tx).Create(&a)
		if errors.Is(err, repository.ErrDuplicate) {
			return apierr.Duplicate("Relationship already exists")
		}
		return err
	})
}

func (s *Service[A]) Get(ctx context.Context, id int64) (*A, error) {
	return s.lookup(s.store.Conn(ctx), id)
}

// Update rewrites the foreign keys present in the change read through
// decode. The row lookup runs before the body is read.
func (s *Service[A]) Update(ctx context.Context, id int64, decode func() (Change, error)) error {
	return s.store.Transaction(ctx, func(tx *gorm.DB) error {
		a, err := s.lookup(tx, id)
		if err != nil {
			return err
		}
		ch, err := decode()
		if err != nil {
			return err
		}

		l, r := s.kind.Keys(a)
		if ch.Left != nil {
			if err := s.resolve(tx, s.kind.Left, *ch.Left); err != nil {
				return err
			}
			*l = *ch.Left
		}
		if ch.Right != nil {
			if err := s.resolve(tx, s.kind.Right, *ch.Right); err != nil {
				return err
			}
			*r = *ch.Right
		}

		err = repository.NewTable[A](tx).Save(a)
		if errors.Is(err, repository.ErrDuplicate) {
			return apierr.Duplicate("Relationship already exists")
		}
		return err
	})
}

func (s *Service[A]) Delete(ctx context.Context, id int64) error {
	return s.store.Transaction(ctx, func(tx *gorm.DB) error {
		a, err := s.lookup(tx, id)
		if err != nil {
			return err
		}
		return repository.NewTable[A](tx).Delete(a)
	})
}

func (s *Service[A]) lookup(db *gorm.DB, id int64) (*A, error) {
	a, err := repository.NewTable[A](db).Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apierr.NotFoundf("Relationship", id, "Invalid relationship id")
	}
	return a, err
}

func (s *Service[A]) resolve(db *gorm.DB, side Side, id int64) error {
	found, err := side.Exists(db, id)
	if err != nil {
		return err
	}
	if !found {
		return apierr.InvalidForeignKey(side.Field)
	}
	return nil
}

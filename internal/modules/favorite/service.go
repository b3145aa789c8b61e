package favorite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"swapi/internal/domain"
	"swapi/internal/pkg/apierr"
	"swapi/internal/repository"
)

// Category describes one favorite table: the row type F, the JSON name of
// its target column and how to reach the user and target keys of a row.
type Category[F any] struct {
	// Path is the plural entity segment, e.g. "starships" for /favorite_starships.
	Path string
	// Field is the target column, e.g. "starship_id".
	Field string
	// Entity is the singular display name, e.g. "Starship".
	Entity string
	// Keys returns pointers to the user and target ids of a row.
	Keys func(f *F) (userID, targetID *int64)
	// TargetExists checks the target entity table.
	TargetExists func(db *gorm.DB, id int64) (bool, error)
}

// Service implements the favorite operations of one category.
type Service[F any] struct {
	store *repository.Store
	cat   Category[F]
}

func NewService[F any](store *repository.Store, cat Category[F]) *Service[F] {
	return &Service[F]{store: store, cat: cat}
}

// All returns every favorite row of the category across users.
func (s *Service[F]) All(ctx context.Context) ([]F, error) {
	return repository.NewTable[F](s.store.Conn(ctx)).All()
}

// ByTarget returns every row referencing targetID across users.
func (s *Service[F]) ByTarget(ctx context.Context, targetID int64) ([]F, error) {
	return repository.NewTable[F](s.store.Conn(ctx)).Find(map[string]any{s.cat.Field: targetID})
}

// DeleteByTarget removes every row referencing targetID in one commit.
func (s *Service[F]) DeleteByTarget(ctx context.Context, targetID int64) (int64, error) {
	var removed int64
	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		n, err := repository.NewTable[F](tx).DeleteWhere(map[string]any{s.cat.Field: targetID})
		removed = n
		return err
	})
	return removed, err
}

// ForUser returns the favorites of one user.
func (s *Service[F]) ForUser(ctx context.Context, userID int64) ([]F, error) {
	db := s.store.Conn(ctx)
	if err := requireUser(db, userID); err != nil {
		return nil, err
	}
	return s.listForUser(db, userID)
}

// Add links userID to targetID. Both must exist and the pair must be new;
// the unique index on the table decides the latter.
func (s *Service[F]) Add(ctx context.Context, userID, targetID int64) error {
	return s.store.Transaction(ctx, func(tx *gorm.DB) error {
		found, err := repository.Exists[domain.User](tx, userID)
		if err != nil {
			return err
		}
		if !found {
			return apierr.InvalidForeignKey("user_id")
		}
		found, err = s.cat.TargetExists(tx, targetID)
		if err != nil {
			return err
		}
		if !found {
			return apierr.InvalidForeignKey(s.cat.Field)
		}

		var f F
		u, t := s.cat.Keys(&f)
		*u, *t = userID, targetID
		err = repository.NewTable[F](tx).Create(&f)
		if errors.Is(err, repository.ErrDuplicate) {
			return apierr.Duplicate("%s already in favorites of the user with ID %d", s.cat.Entity, userID)
		}
		return err
	})
}

// Get returns the single (userID, targetID) row.
func (s *Service[F]) Get(ctx context.Context, userID, targetID int64) (*F, error) {
	return s.find(s.store.Conn(ctx), userID, targetID)
}

// Remove deletes the single (userID, targetID) row.
func (s *Service[F]) Remove(ctx context.Context, userID, targetID int64) error {
	return s.store.Transaction(ctx, func(tx *gorm.DB) error {
		f, err := s.find(tx, userID, targetID)
		if err != nil {
			return err
		}
		return repository.NewTable[F](tx).Delete(f)
	})
}

func (s *Service[F]) find(db *gorm.DB, userID, targetID int64) (*F, error) {
	f, err := repository.NewTable[F](db).FindOne(map[string]any{"user_id": userID, s.cat.Field: targetID})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apierr.NotFoundf("Favorite "+s.cat.Entity, targetID, "Invalid user_id or %s", s.cat.Field)
	}
	return f, err
}

func (s *Service[F]) listForUser(db *gorm.DB, userID int64) ([]F, error) {
	return repository.NewTable[F](db).Find(map[string]any{"user_id": userID})
}

func requireUser(db *gorm.DB, userID int64) error {
	found, err := repository.Exists[domain.User](db, userID)
	if err != nil {
		return err
	}
	if !found {
		return apierr.NotFound("User", userID)
	}
	return nil
}

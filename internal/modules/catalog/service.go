package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"swapi/internal/domain"
	"swapi/internal/pkg/apierr"
	"swapi/internal/repository"
)

// draft is a validated create request for model M.
type draft[M any] interface {
	build() M
}

// patch is an update request that overwrites only the fields it carries.
type patch[M any] interface {
	apply(*M)
}

// reference is a foreign key carried by a request.
type reference struct {
	field  string
	id     int64
	exists func(db *gorm.DB, id int64) (bool, error)
}

// referencer is implemented by requests that carry foreign keys.
type referencer interface {
	references() []reference
}

// Service implements the collection and single-row operations of one entity.
type Service[M any, C draft[M], U patch[M]] struct {
	store  *repository.Store
	entity string
}

func NewService[M any, C draft[M], U patch[M]](store *repository.Store, entity string) *Service[M, C, U] {
	return &Service[M, C, U]{store: store, entity: entity}
}

// Create inserts the row described by req after its foreign keys resolve.
func (s *Service[M, C, U]) Create(ctx context.Context, req C) error {
	return s.store.Transaction(ctx, func(tx *gorm.DB) error {
		if err := checkReferences(tx, req); err != nil {
			return err
		}
		m := req.build()
		return repository.NewTable[M](tx).Create(&m)
	})
}

// List returns every row. Entities with associations are expanded with
// the full related rows.
func (s *Service[M, C, U]) List(ctx context.Context) ([]any, error) {
	var zero M
	var preloads []string
	if e, ok := any(zero).(domain.Expander); ok {
		preloads = e.Preloads()
	}

	rows, err := repository.NewTable[M](s.store.Conn(ctx)).All(preloads...)
	if err != nil {
		return nil, err
	}

	out := make([]any, 0, len(rows))
	for _, row := range rows {
		if e, ok := any(row).(domain.Expander); ok {
			out = append(out, e.Expanded())
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

// Get returns one row or a NotFoundError.
func (s *Service[M, C, U]) Get(ctx context.Context, id int64) (*M, error) {
	return s.lookup(s.store.Conn(ctx), id)
}

// Update locates the row, then reads the request through decode and applies
// it. The lookup runs first so an unknown id wins over a bad body.
func (s *Service[M, C, U]) Update(ctx context.Context, id int64, decode func() (U, error)) error {
	return s.store.Transaction(ctx, func(tx *gorm.DB) error {
		m, err := s.lookup(tx, id)
		if err != nil {
			return err
		}
		req, err := decode()
		if err != nil {
			return err
		}
		if err := checkReferences(tx, req); err != nil {
			return err
		}
		req.apply(m)
		return repository.NewTable[M](tx).Save(m)
	})
}

func (s *Service[M, C, U]) lookup(db *gorm.DB, id int64) (*M, error) {
	m, err := repository.NewTable[M](db).Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apierr.NotFound(s.entity, id)
	}
	return m, err
}

func checkReferences(db *gorm.DB, req any) error {
	r, ok := req.(referencer)
	if !ok {
		return nil
	}
	for _, ref := range r.references() {
		found, err := ref.exists(db, ref.id)
		if err != nil {
			return err
		}
		if !found {
			return apierr.InvalidForeignKey(ref.field)
		}
	}
	return nil
}

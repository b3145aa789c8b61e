package repository

import (
	"gorm.io/gorm"
)

// Table gives typed access to the rows of model M through db,
// which is either a transaction or a context-bound session.
type Table[M any] struct {
	db *gorm.DB
}

func NewTable[M any](db *gorm.DB) Table[M] {
	return Table[M]{db: db}
}

// Create inserts m. Unique index conflicts return ErrDuplicate.
func (t Table[M]) Create(m *M) error {
	return classify(t.db.Create(m).Error)
}

// All returns every row ordered by id, loading the given associations.
func (t Table[M]) All(preloads ...string) ([]M, error) {
	q := t.db
	for _, p := range preloads {
		q = q.Preload(p)
	}
	rows := make([]M, 0)
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get returns the row with the given primary key or ErrNotFound.
func (t Table[M]) Get(id int64) (*M, error) {
	var m M
	if err := t.db.First(&m, id).Error; err != nil {
		return nil, classify(err)
	}
	return &m, nil
}

// Find returns the rows matching every column in cond, ordered by id.
func (t Table[M]) Find(cond map[string]any) ([]M, error) {
	rows := make([]M, 0)
	if err := t.db.Where(cond).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindOne returns the first row matching cond or ErrNotFound.
func (t Table[M]) FindOne(cond map[string]any) (*M, error) {
	var m M
	if err := t.db.Where(cond).Order("id").First(&m).Error; err != nil {
		return nil, classify(err)
	}
	return &m, nil
}

// Save writes every column of m back to its row.
func (t Table[M]) Save(m *M) error {
	return classify(t.db.Save(m).Error)
}

func (t Table[M]) Delete(m *M) error {
	return t.db.Delete(m).Error
}

// DeleteWhere removes every row matching cond and reports how many went away.
func (t Table[M]) DeleteWhere(cond map[string]any) (int64, error) {
	res := t.db.Where(cond).Delete(new(M))
	return res.RowsAffected, res.Error
}

// Exists reports whether a row of M has the given primary key.
// It is the single lookup every foreign key check goes through.
func Exists[M any](db *gorm.DB, id int64) (bool, error) {
	var count int64
	if err := db.Model(new(M)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

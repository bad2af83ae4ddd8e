package implementation

import (
	"context"
	"errors"

	"casino-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type entityMapper[E any, M any] interface {
	ToEntity(m *M) *E
	ToModel(e *E) *M
	ToEntities(models []*M) []*E
}

// crudRepository is embedded by every table repository. E is the domain
// entity, M the gorm model.
type crudRepository[E any, M any] struct {
	db       *gorm.DB
	mapper   entityMapper[E, M]
	preloads []string
}

func newCrudRepository[E any, M any](db *gorm.DB, mapper entityMapper[E, M], preloads ...string) crudRepository[E, M] {
	return crudRepository[E, M]{db: db, mapper: mapper, preloads: preloads}
}

func (r *crudRepository[E, M]) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *crudRepository[E, M]) withPreloads(db *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		db = db.Preload(p)
	}
	return db
}

func (r *crudRepository[E, M]) Create(ctx context.Context, e *E) error {
	m := r.mapper.ToModel(e)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*e = *r.mapper.ToEntity(m)
	return nil
}

// Update writes every column, zero values included.
func (r *crudRepository[E, M]) Update(ctx context.Context, e *E) error {
	m := r.mapper.ToModel(e)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*e = *r.mapper.ToEntity(m)
	return nil
}

func (r *crudRepository[E, M]) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(new(M)).Error
}

func (r *crudRepository[E, M]) FindOne(ctx context.Context, specs ...specification.Specification) (*E, error) {
	m := new(M)
	query := r.applySpecifications(r.withPreloads(r.db.WithContext(ctx)), specs...)
	if err := query.First(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *crudRepository[E, M]) FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error) {
	var models []*M
	query := r.applySpecifications(r.withPreloads(r.db.WithContext(ctx)), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *crudRepository[E, M]) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(new(M)), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

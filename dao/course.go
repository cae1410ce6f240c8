package dao

import (
	"context"

	"forohub/models"

	"gorm.io/gorm"
)

type Course struct {
	Repo[models.Course]
}

func NewCourse(db *gorm.DB) *Course {
	return &Course{
		Repo: NewRepo[models.Course](db),
	}
}

// ExistsByName comprueba unicidad exacta del nombre (sensible a mayúsculas).
func (d *Course) ExistsByName(ctx context.Context, name string) (bool, error) {
	return d.IsExist(ctx, "name = BINARY ?", name)
}

// GetByID devuelve el curso o nil si no existe.
func (d *Course) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	err := d.Db.WithContext(ctx).Where("id = ?", id).First(&course).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// ListAll lista todos los cursos, sin orden garantizado.
func (d *Course) ListAll(ctx context.Context) ([]*models.Course, error) {
	return d.FindAll(ctx)
}

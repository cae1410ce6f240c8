package dao

import (
	"context"

	"forohub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Topic struct {
	Repo[models.Topic]
}

func NewTopic(db *gorm.DB) *Topic {
	return &Topic{
		Repo: NewRepo[models.Topic](db),
	}
}

// Todas las lecturas de tópicos aplican el predicado de borrado lógico de
// forma explícita (active = true); nada se filtra por detrás.

// ExistsActiveByTitleAndBody detecta tópicos duplicados entre los activos.
func (d *Topic) ExistsActiveByTitleAndBody(ctx context.Context, title, body string) (bool, error) {
	return d.IsExist(ctx, "title = ? AND body = ? AND active = ?", title, body, true)
}

// GetByID lectura superficial (tópico + curso) o profunda (con respuestas).
// Devuelve nil si el tópico no existe o está inactivo.
func (d *Topic) GetByID(ctx context.Context, id int64, withReplies bool) (*models.Topic, error) {
	var topic models.Topic
	q := d.Db.WithContext(ctx).Preload("Course")
	if withReplies {
		q = q.Preload("Replies", "active = ?", true)
	}
	err := q.Where("id = ? AND active = ?", id, true).First(&topic).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// GetByIDTx lectura superficial dentro de la transacción tx.
func (d *Topic) GetByIDTx(tx *gorm.DB, id int64) (*models.Topic, error) {
	var topic models.Topic
	err := tx.Where("id = ? AND active = ?", id, true).First(&topic).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// GetByIDForUpdate carga el tópico dentro de tx bloqueando su fila
// (SELECT ... FOR UPDATE). Serializa dos aceptaciones de solución
// concurrentes sobre el mismo tópico.
func (d *Topic) GetByIDForUpdate(tx *gorm.DB, id int64) (*models.Topic, error) {
	var topic models.Topic
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND active = ?", id, true).
		First(&topic).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// GetByIDAnyState localiza el tópico ignorando el borrado lógico. Lo usa el
// soft delete para que un segundo borrado no falle.
func (d *Topic) GetByIDAnyState(ctx context.Context, id int64) (*models.Topic, error) {
	var topic models.Topic
	err := d.Db.WithContext(ctx).Where("id = ?", id).First(&topic).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// FindPage lista tópicos activos con filtros opcionales por nombre de curso
// (sin distinguir mayúsculas) y año de creación, ordenados por fecha desc.
func (d *Topic) FindPage(ctx context.Context, courseName *string, year *int, page, size int) ([]*models.Topic, int64, error) {
	q := d.Db.WithContext(ctx).
		Model(&models.Topic{}).
		Joins("Course").
		Where("topic.active = ?", true)

	if courseName != nil {
		q = q.Where("LOWER(`Course`.`name`) = LOWER(?)", *courseName)
	}
	if year != nil {
		q = q.Where("YEAR(topic.created_at) = ?", *year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var topics []*models.Topic
	err := q.Order("topic.created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&topics).Error
	return topics, total, err
}

// FindResolvedPage lista tópicos activos con status = RESOLVED. El estado del
// tópico es la fuente de verdad, no la bandera de las respuestas.
func (d *Topic) FindResolvedPage(ctx context.Context, page, size int) ([]*models.Topic, int64, error) {
	q := d.Db.WithContext(ctx).
		Model(&models.Topic{}).
		Joins("Course").
		Where("topic.active = ? AND topic.status = ?", true, models.TopicStatusResolved)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var topics []*models.Topic
	err := q.Order("topic.created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&topics).Error
	return topics, total, err
}

// Updates aplica un mapa de columnas sobre el tópico.
func (d *Topic) Updates(ctx context.Context, id int64, values map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Topic{}).
		Where("id = ?", id).
		Updates(values).Error
}

// SoftDelete marca el tópico como inactivo. Repetir la llamada no falla.
func (d *Topic) SoftDelete(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Topic{}).
		Where("id = ?", id).
		Update("active", false).Error
}

// MarkResolvedTx fija status = RESOLVED dentro de la transacción tx.
func (d *Topic) MarkResolvedTx(tx *gorm.DB, id int64) error {
	return tx.Model(&models.Topic{}).
		Where("id = ?", id).
		Update("status", models.TopicStatusResolved).Error
}

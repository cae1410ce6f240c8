package dao

import (
	"context"

	"forohub/models"

	"gorm.io/gorm"
)

type Reply struct {
	Repo[models.Reply]
}

func NewReply(db *gorm.DB) *Reply {
	return &Reply{
		Repo: NewRepo[models.Reply](db),
	}
}

// ExistsByMessageAuthorTopic detecta respuestas idénticas en el mismo tópico.
func (d *Reply) ExistsByMessageAuthorTopic(ctx context.Context, message, author string, topicID int64) (bool, error) {
	return d.IsExist(ctx, "message = ? AND author = ? AND topic_id = ?", message, author, topicID)
}

// ExistsByMessageAuthorTopicTx versión de la comprobación anterior dentro de
// la transacción tx.
func (d *Reply) ExistsByMessageAuthorTopicTx(tx *gorm.DB, message, author string, topicID int64) (bool, error) {
	var reply models.Reply
	err := tx.Select("id").
		Where("message = ? AND author = ? AND topic_id = ?", message, author, topicID).
		First(&reply).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateTx inserta la respuesta dentro de la transacción tx.
func (d *Reply) CreateTx(tx *gorm.DB, reply *models.Reply) error {
	return tx.Create(reply).Error
}

// ListByTopic respuestas activas de un tópico, por fecha ascendente.
func (d *Reply) ListByTopic(ctx context.Context, topicID int64) ([]*models.Reply, error) {
	var replies []*models.Reply
	err := d.Db.WithContext(ctx).
		Where("topic_id = ? AND active = ?", topicID, true).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

// ListSolutionsByTopic respuestas marcadas como solución. Debería devolver 0
// o 1 elementos; se expone como lista para hacer visibles las violaciones.
func (d *Reply) ListSolutionsByTopic(ctx context.Context, topicID int64) ([]*models.Reply, error) {
	var replies []*models.Reply
	err := d.Db.WithContext(ctx).
		Where("topic_id = ? AND is_solution = ? AND active = ?", topicID, true, true).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

// ListByTopicTx respuestas activas leídas dentro de la transacción tx; lo usa
// la aceptación de solución tras bloquear la fila del tópico.
func (d *Reply) ListByTopicTx(tx *gorm.DB, topicID int64) ([]*models.Reply, error) {
	var replies []*models.Reply
	err := tx.Where("topic_id = ? AND active = ?", topicID, true).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

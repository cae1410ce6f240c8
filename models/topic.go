package models

import "time"

type TopicStatus string

const (
	TopicStatusOpen     TopicStatus = "OPEN"
	TopicStatusResolved TopicStatus = "RESOLVED"
)

// ValidTopicStatus indica si el valor corresponde a un estado conocido.
func ValidTopicStatus(s string) bool {
	return s == string(TopicStatusOpen) || s == string(TopicStatusResolved)
}

// Topic tópico del foro
//
// La unicidad (title, body) evita tópicos duplicados. El borrado es lógico:
// active = false excluye la fila de toda lectura por defecto.
type Topic struct {
	ID        int64       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title     string      `gorm:"type:varchar(255);uniqueIndex:uk_topic_title_body;not null" json:"title"`
	Body      string      `gorm:"type:varchar(255);uniqueIndex:uk_topic_title_body;not null" json:"body"`
	CreatedAt time.Time   `gorm:"index" json:"created_at"`
	Status    TopicStatus `gorm:"type:varchar(20);not null" json:"status"`
	Author    string      `gorm:"type:varchar(100);not null" json:"author"`
	Active    bool        `gorm:"default:true;not null" json:"active"`
	CourseID  int64       `gorm:"index;not null" json:"course_id"`

	Course  Course  `gorm:"foreignKey:CourseID" json:"course"`
	Replies []Reply `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"replies"`
}

func (Topic) TableName() string {
	return "topic"
}

// Solution devuelve el mensaje de la respuesta marcada como solución, o nil.
// Requiere que Replies esté cargado (lectura profunda).
func (t *Topic) Solution() *string {
	for i := range t.Replies {
		if t.Replies[i].IsSolution {
			return &t.Replies[i].Message
		}
	}
	return nil
}


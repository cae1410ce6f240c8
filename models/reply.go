package models

import "time"

// Reply respuesta publicada en un tópico
//
// La unicidad (message, author, topic_id) evita respuestas idénticas.
type Reply struct {
	ID         int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Message    string    `gorm:"type:varchar(255);uniqueIndex:uk_reply;not null" json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	Author     string    `gorm:"type:varchar(100);uniqueIndex:uk_reply;not null" json:"author"`
	IsSolution bool      `gorm:"default:false;not null" json:"is_solution"`
	Active     bool      `gorm:"default:true;not null" json:"active"`
	TopicID    int64     `gorm:"uniqueIndex:uk_reply;index;not null" json:"topic_id"`
}

func (Reply) TableName() string {
	return "reply"
}

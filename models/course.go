package models

// Course curso al que pertenecen los tópicos
type Course struct {
	// ID manual (snowflake), autoincremento desactivado
	ID       int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name     string `gorm:"type:varchar(100);uniqueIndex:uk_course_name;not null" json:"name"`
	Category string `gorm:"type:varchar(100);not null" json:"category"`
}

func (Course) TableName() string {
	return "course"
}

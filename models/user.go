package models

// User usuario que puede autenticarse contra /login
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Login    string `gorm:"type:varchar(100);uniqueIndex:uk_user_login;not null" json:"login"`
	Password string `gorm:"type:varchar(100);not null" json:"-"` // hash bcrypt
}

func (User) TableName() string {
	return "users"
}

package dao

import (
	"context"

	"forohub/models"

	"gorm.io/gorm"
)

type User struct {
	Repo[models.User]
}

func NewUser(db *gorm.DB) *User {
	return &User{
		Repo: NewRepo[models.User](db),
	}
}

// FindByLogin localiza un usuario por su login.
func (d *User) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	return d.FindByWhere(ctx, "login = ?", login)
}

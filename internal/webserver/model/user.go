package model

import (
	"time"
)

const (
	RoleRegular = iota + 1
	RoleAdmin
)

type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Uuid      string `gorm:"uniqueIndex"`
	Name      string
	Email     string `gorm:"uniqueIndex"`
	Password  string
	Role      int
}

package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	UserName     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"user_name"`
	Email        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string    `gorm:"type:varchar(50)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(50)" json:"last_name"`
	DateJoined   time.Time `gorm:"autoCreateTime" json:"date_joined"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`

	// Relations
	OwnedProjects []Project       `gorm:"foreignKey:OwnerID" json:"-"`
	Memberships   []ProjectMember `gorm:"foreignKey:UserID" json:"-"`
	Comments      []Comment       `gorm:"foreignKey:UserID" json:"-"`
}

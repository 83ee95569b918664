package models

import "time"

type Project struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	ProjectName string    `gorm:"type:varchar(50);not null" json:"project_name"`
	Description string    `gorm:"type:text" json:"description"`
	OwnerID     uint64    `gorm:"not null" json:"owner"`
	DateCreated time.Time `gorm:"autoCreateTime" json:"date_created"`

	// Relations
	Owner   User            `gorm:"foreignKey:OwnerID" json:"-"`
	Members []ProjectMember `gorm:"foreignKey:ProjectID" json:"-"`
	Tasks   []Task          `gorm:"foreignKey:ProjectID" json:"-"`
}

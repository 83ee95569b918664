package models

type MemberRole string

const (
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

// IsValid reports whether the role is one of the allowed values.
func (r MemberRole) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

type ProjectMember struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	ProjectID uint64     `gorm:"not null" json:"project"`
	UserID    uint64     `gorm:"not null" json:"user"`
	Role      MemberRole `gorm:"type:varchar(20);not null;default:'member'" json:"role"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
}

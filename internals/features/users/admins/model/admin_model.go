package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminModel struct {
	AdminID        uuid.UUID `gorm:"column:admin_id;type:uuid;primaryKey" json:"admin_id"`
	AdminName      string    `gorm:"column:admin_name;type:varchar(100);not null" json:"admin_name"`
	AdminEmail     string    `gorm:"column:admin_email;type:varchar(255);not null;uniqueIndex" json:"admin_email"`
	AdminPassword  string    `gorm:"column:admin_password;type:varchar(255);not null" json:"-"`
	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt time.Time `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at"`
}

// TableName sets the table name for AdminModel
func (AdminModel) TableName() string {
	return "admins"
}

func (m *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminID == uuid.Nil {
		m.AdminID = uuid.New()
	}
	return nil
}

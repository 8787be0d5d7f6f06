package storage

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserRecord struct {
	GormModel
	UserId       string `gorm:"size:36;not null;uniqueIndex"`  // 用户唯一索引
	Name         string `gorm:"size:128;not null"`             // 用户姓名
	Email        string `gorm:"size:254;not null;uniqueIndex"` // 唯一登录邮箱, 小写存储
	PasswordHash string `gorm:"size:128;not null"`
	Role         string `gorm:"size:32;not null;default:user"`
}

func (UserRecord) TableName() string {
	return "users"
}

type VenueRecord struct {
	GormModel
	DeletedAt soft_delete.DeletedAt `gorm:"index"`

	VenueId   string `gorm:"size:36;not null;uniqueIndex"`
	OwnerId   string `gorm:"size:36;not null;index"`
	Name      string `gorm:"size:255;not null"`
	Address   string `gorm:"size:255;not null"`
	City      string `gorm:"size:128;not null"`
	State     string `gorm:"size:128;not null"`
	Country   string `gorm:"size:128;not null"`
	ZipCode   string `gorm:"size:32;not null"`
	Capacity  int    `gorm:"not null;default:0"`
	Website   string `gorm:"size:512"`
	TechSpecs string `gorm:"type:text"`
	Notes     string `gorm:"type:text"`
}

func (VenueRecord) TableName() string {
	return "venues"
}

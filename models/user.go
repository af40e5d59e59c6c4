package models

import (
	"time"
)

// User 用户模型
// ID 为内部存储主键；UserID 为调用方自选的数字编号，唯一且创建后不可变
type User struct {
	ID            uint      `json:"-" gorm:"primaryKey"`
	UserID        int64     `json:"id" gorm:"column:user_id;uniqueIndex;not null"`
	FirstName     string    `json:"first_name" gorm:"size:100;not null"`
	LastName      string    `json:"last_name" gorm:"size:100;not null"`
	Birthday      time.Time `json:"birthday" gorm:"not null"`
	MaritalStatus string    `json:"marital_status" gorm:"size:50"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}

package models

import (
	"time"
)

// Expense 消费记录模型
// UserID 为所属用户的数字编号；OwnerRef 为创建时冗余保存的用户存储主键，
// 用户被删除后记录依然保留（不做级联删除）
type Expense struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"userid" gorm:"column:user_id;index;not null"`
	OwnerRef    uint      `json:"-" gorm:"index;not null"`
	Description string    `json:"description" gorm:"size:255;not null"`
	Category    Category  `json:"category" gorm:"size:50;not null"`
	Sum         float64   `json:"sum" gorm:"column:amount;type:decimal(10,2);not null"`
	Date        time.Time `json:"date" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

package store

import (
	"costmanager/models"

	"gorm.io/gorm"
)

// UserStore 用户集合的持久化封装
// 数据库句柄由构造时注入，便于测试时替换为 mock 连接
type UserStore struct {
	db *gorm.DB
}

// NewUserStore 创建用户存储
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByUserID 按数字编号查找用户，未找到返回 gorm.ErrRecordNotFound
func (s *UserStore) FindByUserID(userID int64) (*models.User, error) {
	var user models.User
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Insert 写入用户记录
func (s *UserStore) Insert(user *models.User) error {
	return s.db.Create(user).Error
}

// UpdateByUserID 按数字编号部分更新，返回更新后的记录
func (s *UserStore) UpdateByUserID(userID int64, fields map[string]interface{}) (*models.User, error) {
	var user models.User
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := s.db.Model(&user).Updates(fields).Error; err != nil {
			return nil, err
		}
		// 重新获取更新后的记录
		if err := s.db.First(&user, user.ID).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// DeleteByUserID 按数字编号删除，返回删除行数
// 不级联删除该用户的消费记录
func (s *UserStore) DeleteByUserID(userID int64) (int64, error) {
	res := s.db.Where("user_id = ?", userID).Delete(&models.User{})
	return res.RowsAffected, res.Error
}

package service

import (
	"errors"

	"costmanager/models"
	"costmanager/store"

	"gorm.io/gorm"
)

// UserService 用户业务编排，组合用户存储与报表聚合
type UserService struct {
	users  *store.UserStore
	report *ReportAggregator
}

// NewUserService 创建用户服务
func NewUserService(users *store.UserStore, report *ReportAggregator) *UserService {
	return &UserService{users: users, report: report}
}

// Create 新增用户
// 应用层先查重，编号已存在返回 ErrDuplicateUser，不覆盖已有记录
func (s *UserService) Create(user *models.User) error {
	_, err := s.users.FindByUserID(user.UserID)
	if err == nil {
		return ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.users.Insert(user)
}

// Update 按数字编号部分更新用户
func (s *UserService) Update(userID int64, fields map[string]interface{}) (*models.User, error) {
	user, err := s.users.UpdateByUserID(userID, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Delete 按数字编号删除用户，该用户的消费记录保留
func (s *UserService) Delete(userID int64) error {
	rows, err := s.users.DeleteByUserID(userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UserDetails 用户详情，total 恒存在，无消费记录时为 0
type UserDetails struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	ID        int64   `json:"id"`
	Total     float64 `json:"total"`
}

// GetDetails 查询用户并附带其累计消费总额
func (s *UserService) GetDetails(userID int64) (*UserDetails, error) {
	user, err := s.users.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	total, err := s.report.LifetimeTotal(userID)
	if err != nil {
		return nil, err
	}

	return &UserDetails{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		ID:        user.UserID,
		Total:     total,
	}, nil
}

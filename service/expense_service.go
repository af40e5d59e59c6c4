package service

import (
	"errors"
	"strings"
	"time"

	"costmanager/models"
	"costmanager/store"
	"costmanager/validation"

	"gorm.io/gorm"
)

// ExpenseService 消费记录业务编排
// 负责新增时的字段校验与用户存在性检查；存储层错误原样上抛
type ExpenseService struct {
	users    *store.UserStore
	expenses *store.ExpenseStore
}

// NewExpenseService 创建消费记录服务
func NewExpenseService(users *store.UserStore, expenses *store.ExpenseStore) *ExpenseService {
	return &ExpenseService{users: users, expenses: expenses}
}

// CreateCostInput 新增消费记录入参，Date 为空时取当前时间
type CreateCostInput struct {
	Description string
	Category    models.Category
	UserID      int64
	Sum         float64
	Date        *time.Time
}

// Create 新增消费记录
// 先做字段校验，再确认用户存在，两步都通过才写库。
// 存在性检查与写入是两次独立的存储操作，中间用户被删除的窗口不做防护
func (s *ExpenseService) Create(in CreateCostInput) (*models.Expense, error) {
	if err := validation.ValidateCostInput(in.Description, in.Category, in.UserID, in.Sum); err != nil {
		return nil, err
	}

	owner, err := s.users.FindByUserID(in.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	expense := &models.Expense{
		UserID:      in.UserID,
		OwnerRef:    owner.ID,
		Description: strings.TrimSpace(in.Description),
		Category:    in.Category,
		Sum:         in.Sum,
		Date:        date,
	}
	if err := s.expenses.Insert(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// UpdateCostInput 部分更新入参，nil 表示不修改该字段
type UpdateCostInput struct {
	Description *string
	Category    *models.Category
	Sum         *float64
	Date        *time.Time
}

// Update 按主键部分更新消费记录
// 与 Create 不同，这里不做字段级校验，调用方给什么存什么（既有对外契约如此）
func (s *ExpenseService) Update(id uint, in UpdateCostInput) (*models.Expense, error) {
	fields := make(map[string]interface{})
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Sum != nil {
		fields["amount"] = *in.Sum
	}
	if in.Date != nil {
		fields["date"] = *in.Date
	}

	expense, err := s.expenses.UpdateByID(id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCostNotFound
	}
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete 按主键删除消费记录
func (s *ExpenseService) Delete(id uint) error {
	rows, err := s.expenses.DeleteByID(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCostNotFound
	}
	return nil
}

// List 查询用户的消费记录，支持类别和时间范围筛选
func (s *ExpenseService) List(userID int64, filter store.ListFilter) ([]models.Expense, error) {
	return s.expenses.FindByUser(userID, filter)
}

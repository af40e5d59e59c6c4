package store

import (
	"time"

	"costmanager/models"

	"gorm.io/gorm"
)

// ExpenseStore 消费记录集合的持久化封装
type ExpenseStore struct {
	db *gorm.DB
}

// NewExpenseStore 创建消费记录存储
func NewExpenseStore(db *gorm.DB) *ExpenseStore {
	return &ExpenseStore{db: db}
}

// Insert 写入消费记录
func (s *ExpenseStore) Insert(expense *models.Expense) error {
	return s.db.Create(expense).Error
}

// FindByID 按主键查找，未找到返回 gorm.ErrRecordNotFound
func (s *ExpenseStore) FindByID(id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.First(&expense, id).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

// UpdateByID 按主键部分更新，返回更新后的记录
func (s *ExpenseStore) UpdateByID(id uint, fields map[string]interface{}) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.First(&expense, id).Error; err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := s.db.Model(&expense).Updates(fields).Error; err != nil {
			return nil, err
		}
		if err := s.db.First(&expense, expense.ID).Error; err != nil {
			return nil, err
		}
	}
	return &expense, nil
}

// DeleteByID 按主键删除，返回删除行数
func (s *ExpenseStore) DeleteByID(id uint) (int64, error) {
	res := s.db.Delete(&models.Expense{}, id)
	return res.RowsAffected, res.Error
}

// FindByUserInRange 查询用户在 [start, end] 时间段内的消费记录
// 两端均为闭区间，按存储返回顺序输出，不做二次排序
func (s *ExpenseStore) FindByUserInRange(userID int64, start, end time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// ListFilter 消费记录列表筛选条件
type ListFilter struct {
	Category models.Category
	Start    *time.Time
	End      *time.Time
}

// FindByUser 查询用户的消费记录，支持类别和时间范围筛选，按时间倒序
func (s *ExpenseStore) FindByUser(userID int64, filter ListFilter) ([]models.Expense, error) {
	query := s.db.Where("user_id = ?", userID)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Start != nil {
		query = query.Where("date >= ?", *filter.Start)
	}
	if filter.End != nil {
		query = query.Where("date <= ?", *filter.End)
	}

	var expenses []models.Expense
	if err := query.Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// SumByUser 汇总用户全部消费金额，无记录时返回 0
func (s *ExpenseStore) SumByUser(userID int64) (float64, error) {
	var total float64
	err := s.db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

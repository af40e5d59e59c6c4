package service

import (
	"time"

	"costmanager/models"
	"costmanager/store"
)

// ReportAggregator 报表聚合，只读消费记录存储
type ReportAggregator struct {
	expenses *store.ExpenseStore
}

// NewReportAggregator 创建报表聚合器
func NewReportAggregator(expenses *store.ExpenseStore) *ReportAggregator {
	return &ReportAggregator{expenses: expenses}
}

// ReportEntry 报表中的单条消费，day 为该笔消费的自然日
type ReportEntry struct {
	Sum         float64 `json:"sum"`
	Description string  `json:"description"`
	Day         int     `json:"day"`
}

// MonthlyReport 月度报表
// Costs 为固定顺序的单键对象数组，五个类别必定全部出现，无记录的类别为空数组
type MonthlyReport struct {
	UserID int64                               `json:"userid"`
	Year   int                                 `json:"year"`
	Month  int                                 `json:"month"`
	Costs  []map[models.Category][]ReportEntry `json:"costs"`
}

// MonthRange 计算指定年月的闭区间边界
// 起点为当月第一天 00:00:00，终点为当月最后一天 23:59:59（闰年二月含 29 日）
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// Monthly 生成用户的月度分类报表，month 从 1 开始
func (a *ReportAggregator) Monthly(userID int64, year, month int) (*MonthlyReport, error) {
	start, end := MonthRange(year, month)

	expenses, err := a.expenses.FindByUserInRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	// 先为每个类别建空序列，保证无记录的类别也出现在结果里
	grouped := make(map[models.Category][]ReportEntry, len(models.Categories()))
	for _, c := range models.Categories() {
		grouped[c] = []ReportEntry{}
	}
	// 按查询返回顺序追加，不做二次排序
	for _, e := range expenses {
		grouped[e.Category] = append(grouped[e.Category], ReportEntry{
			Sum:         e.Sum,
			Description: e.Description,
			Day:         e.Date.Day(),
		})
	}

	costs := make([]map[models.Category][]ReportEntry, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		costs = append(costs, map[models.Category][]ReportEntry{c: grouped[c]})
	}

	return &MonthlyReport{
		UserID: userID,
		Year:   year,
		Month:  month,
		Costs:  costs,
	}, nil
}

// LifetimeTotal 用户全部消费金额之和，无记录时为 0
func (a *ReportAggregator) LifetimeTotal(userID int64) (float64, error) {
	return a.expenses.SumByUser(userID)
}

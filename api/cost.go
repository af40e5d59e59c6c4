package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"costmanager/models"
	"costmanager/service"
	"costmanager/store"
	"costmanager/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 消费时间入参格式，支持带时分秒或仅日期
const (
	costTimeLayout = "2006-01-02 15:04:05"
	costDateLayout = "2006-01-02"
)

// CostHandler 消费记录处理器
type CostHandler struct {
	costs *service.ExpenseService
	log   *logrus.Logger
}

// NewCostHandler 创建消费记录处理器
func NewCostHandler(costs *service.ExpenseService, log *logrus.Logger) *CostHandler {
	return &CostHandler{costs: costs, log: log}
}

// CreateCostRequest 新增消费记录请求
type CreateCostRequest struct {
	Description string  `json:"description" example:"milk"`
	Category    string  `json:"category" example:"food"`
	UserID      int64   `json:"userid" example:"1001"`
	Sum         float64 `json:"sum" example:"8"`
	Date        string  `json:"date" example:"2024-01-15 12:30:00"`
}

// UpdateCostRequest 更新消费记录请求，缺省字段不修改
type UpdateCostRequest struct {
	Description *string  `json:"description" example:"milk"`
	Category    *string  `json:"category" example:"food"`
	Sum         *float64 `json:"sum" example:"8"`
	Date        *string  `json:"date" example:"2024-01-15 12:30:00"`
}

// CostResponse 新增消费记录响应，只回传语义字段，不暴露内部主键
type CostResponse struct {
	Description string    `json:"description"`
	Category    string    `json:"category"`
	UserID      int64     `json:"userid"`
	Sum         float64   `json:"sum"`
	Date        time.Time `json:"date"`
}

func parseCostTime(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(costTimeLayout, value, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation(costDateLayout, value, time.Local)
}

// Create 新增消费记录
// @Summary 新增消费记录
// @Description 校验字段并确认用户存在后写入一条消费记录，date 缺省为当前时间
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param request body CreateCostRequest true "消费记录信息"
// @Success 201 {object} CostResponse "创建成功"
// @Failure 400 {object} MessageResponse "字段校验失败"
// @Failure 404 {object} MessageResponse "用户不存在"
// @Failure 500 {object} MessageResponse "存储错误"
// @Router /api/v1/costs [post]
func (h *CostHandler) Create(c *gin.Context) {
	var req CreateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	in := service.CreateCostInput{
		Description: req.Description,
		Category:    models.Category(req.Category),
		UserID:      req.UserID,
		Sum:         req.Sum,
	}
	if req.Date != "" {
		date, err := parseCostTime(req.Date)
		if err != nil {
			BadRequest(c, "Date format is invalid. Expected: 2006-01-02 15:04:05")
			return
		}
		in.Date = &date
	}

	expense, err := h.costs.Create(in)
	switch {
	case validation.IsValidationError(err):
		BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		NotFound(c, "User not found. Cannot add cost.")
	case err != nil:
		h.log.WithError(err).Error("create cost failed")
		InternalError(c, err.Error())
	default:
		c.JSON(http.StatusCreated, CostResponse{
			Description: expense.Description,
			Category:    string(expense.Category),
			UserID:      expense.UserID,
			Sum:         expense.Sum,
			Date:        expense.Date,
		})
	}
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Description 按主键部分更新，未传字段保持不变。与新增不同，此处不做字段级校验
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param id path int true "消费记录ID"
// @Param request body UpdateCostRequest true "待更新字段"
// @Success 200 {object} models.Expense "更新后的完整记录"
// @Failure 400 {object} MessageResponse "请求参数错误"
// @Failure 404 {object} MessageResponse "记录不存在"
// @Failure 500 {object} MessageResponse "存储错误"
// @Router /api/v1/costs/{id} [put]
func (h *CostHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Cost id must be a number.")
		return
	}

	var req UpdateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	in := service.UpdateCostInput{
		Description: req.Description,
		Sum:         req.Sum,
	}
	if req.Category != nil {
		category := models.Category(*req.Category)
		in.Category = &category
	}
	if req.Date != nil {
		date, err := parseCostTime(*req.Date)
		if err != nil {
			BadRequest(c, "Date format is invalid. Expected: 2006-01-02 15:04:05")
			return
		}
		in.Date = &date
	}

	expense, err := h.costs.Update(uint(id), in)
	switch {
	case errors.Is(err, service.ErrCostNotFound):
		NotFound(c, "Cost not found.")
	case err != nil:
		h.log.WithError(err).Error("update cost failed")
		InternalError(c, err.Error())
	default:
		c.JSON(http.StatusOK, expense)
	}
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Tags 消费记录
// @Produce json
// @Param id path int true "消费记录ID"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 400 {object} MessageResponse "请求参数错误"
// @Failure 404 {object} MessageResponse "记录不存在"
// @Failure 500 {object} MessageResponse "存储错误"
// @Router /api/v1/costs/{id} [delete]
func (h *CostHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Cost id must be a number.")
		return
	}

	err = h.costs.Delete(uint(id))
	switch {
	case errors.Is(err, service.ErrCostNotFound):
		NotFound(c, "Cost not found.")
	case err != nil:
		h.log.WithError(err).Error("delete cost failed")
		InternalError(c, err.Error())
	default:
		Message(c, http.StatusOK, "Cost deleted successfully.")
	}
}

// List 查询消费记录列表
// @Summary 查询消费记录列表
// @Description 查询指定用户的消费记录，支持类别与时间范围筛选，按时间倒序
// @Tags 消费记录
// @Produce json
// @Param userid query int true "用户编号"
// @Param category query string false "类别筛选"
// @Param start_time query string false "开始日期 (2024-01-01)"
// @Param end_time query string false "结束日期 (2024-12-31)，含当天"
// @Success 200 {array} models.Expense "查询成功"
// @Failure 400 {object} MessageResponse "请求参数错误"
// @Failure 500 {object} MessageResponse "存储错误"
// @Router /api/v1/costs [get]
func (h *CostHandler) List(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userid"), 10, 64)
	if err != nil {
		BadRequest(c, "User id is required and must be a number.")
		return
	}

	filter := store.ListFilter{Category: models.Category(c.Query("category"))}
	if v := c.Query("start_time"); v != "" {
		start, err := time.ParseInLocation(costDateLayout, v, time.Local)
		if err != nil {
			BadRequest(c, "start_time format is invalid. Expected: 2006-01-02")
			return
		}
		filter.Start = &start
	}
	if v := c.Query("end_time"); v != "" {
		end, err := time.ParseInLocation(costDateLayout, v, time.Local)
		if err != nil {
			BadRequest(c, "end_time format is invalid. Expected: 2006-01-02")
			return
		}
		// 包含结束日期当天
		end = end.Add(24*time.Hour - time.Second)
		filter.End = &end
	}

	expenses, err := h.costs.List(userID, filter)
	if err != nil {
		h.log.WithError(err).Error("list costs failed")
		InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// GetCategories 获取消费类别列表
// @Summary 获取消费类别列表
// @Description 返回固定的五个消费类别，顺序与月度报表一致
// @Tags 消费记录
// @Produce json
// @Success 200 {array} string "类别列表"
// @Router /api/v1/categories [get]
func (h *CostHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.CategoryNames())
}

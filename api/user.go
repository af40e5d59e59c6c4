package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"costmanager/models"
	"costmanager/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 生日入参格式
const birthdayLayout = "2006-01-02"

// UserHandler 用户处理器
type UserHandler struct {
	users *service.UserService
	log   *logrus.Logger
}

// NewUserHandler 创建用户处理器
func NewUserHandler(users *service.UserService, log *logrus.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// CreateUserRequest 新增用户请求，所有字段必填
type CreateUserRequest struct {
	ID            int64  `json:"id" binding:"required,gt=0" example:"1001"`
	FirstName     string `json:"first_name" binding:"required" example:"A"`
	LastName      string `json:"last_name" binding:"required" example:"B"`
	Birthday      string `json:"birthday" binding:"required" example:"1990-01-01"`
	MaritalStatus string `json:"marital_status" binding:"required" example:"single"`
}

// UpdateUserRequest 更新用户请求，缺省字段不修改；id 不可变更
type UpdateUserRequest struct {
	FirstName     *string `json:"first_name" example:"A"`
	LastName      *string `json:"last_name" example:"B"`
	Birthday      *string `json:"birthday" example:"1990-01-01"`
	MaritalStatus *string `json:"marital_status" example:"married"`
}

// Create 新增用户
// @Summary 新增用户
// @Description 用户编号由调用方指定，已存在时返回 400，不覆盖已有记录
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "用户信息"
// @Success 201 {object} models.User "创建成功"
// @Failure 400 {object} MessageResponse "字段缺失或编号已存在"
// @Failure 500 {object} MessageResponse "存储错误"
// @Router /api/v1/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	birthday, err := time.ParseInLocation(birthdayLayout, req.Birthday, time.Local)
	if err != nil {
		BadRequest(c, "Birthday format is invalid. Expected: 1990-01-01")
		return
	}

	user := &models.User{
		UserID:        req.ID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Birthday:      birthday,
		MaritalStatus: req.MaritalStatus,
	}
	err = h.users.Create(user)
	switch {
	case errors.Is(err, service.ErrDuplicateUser):
		BadRequest(c, "User ID already exists.")
	case err != nil:
		h.log.WithError(err).Error("create user failed")
		InternalError(c, err.Error())
	default:
		c.JSON(http.StatusCreated, user)
	}
}

// Update 更新用户
// @Summary 更新用户
// @Description 按用户编号部分更新，未传字段保持不变
// @Tags 用户
// @Accept json
// @Produce json
// @Param id path int true "用户编号"
// @Param request body UpdateUserRequest true "待更新字段"
// @Success 200 {object} models.User "更新后的记录"
// @Failure 400 {object} MessageResponse "请求参数错误"
// @Failure 404 {object} MessageResponse "用户不存在"
// @Failure 500 {object} MessageResponse "存储错误"
// @Router /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "User id must be a number.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	fields := make(map[string]interface{})
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Birthday != nil {
		birthday, err := time.ParseInLocation(birthdayLayout, *req.Birthday, time.Local)
		if err != nil {
			BadRequest(c, "Birthday format is invalid. Expected: 1990-01-01")
			return
		}
		fields["birthday"] = birthday
	}
	if req.MaritalStatus != nil {
		fields["marital_status"] = *req.MaritalStatus
	}

	user, err := h.users.Update(userID, fields)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		NotFound(c, "User not found.")
	case err != nil:
		h.log.WithError(err).Error("update user failed")
		InternalError(c, err.Error())
	default:
		c.JSON(http.StatusOK, user)
	}
}

// Delete 删除用户
// @Summary 删除用户
// @Description 删除用户本身，其消费记录保留，仍可按编号查询
// @Tags 用户
// @Produce json
// @Param id path int true "用户编号"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 400 {object} MessageResponse "请求参数错误"
// @Failure 404 {object} MessageResponse "用户不存在"
// @Failure 500 {object} MessageResponse "存储错误"
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "User id must be a number.")
		return
	}

	err = h.users.Delete(userID)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		NotFound(c, "User not found.")
	case err != nil:
		h.log.WithError(err).Error("delete user failed")
		InternalError(c, err.Error())
	default:
		Message(c, http.StatusOK, "User deleted successfully.")
	}
}

// GetDetails 获取用户详情
// @Summary 获取用户详情
// @Description 返回用户姓名、编号与累计消费总额，total 恒存在，无记录时为 0
// @Tags 用户
// @Produce json
// @Param id path int true "用户编号"
// @Success 200 {object} service.UserDetails "查询成功"
// @Failure 400 {object} MessageResponse "请求参数错误"
// @Failure 404 {object} MessageResponse "用户不存在"
// @Failure 500 {object} MessageResponse "存储错误"
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetDetails(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "User id must be a number.")
		return
	}

	details, err := h.users.GetDetails(userID)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		NotFound(c, "User not found.")
	case err != nil:
		h.log.WithError(err).Error("get user details failed")
		InternalError(c, err.Error())
	default:
		c.JSON(http.StatusOK, details)
	}
}

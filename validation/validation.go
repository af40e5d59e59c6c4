package validation

import (
	"errors"
	"fmt"
	"strings"

	"costmanager/models"
)

// Error 字段校验错误，调用方据此返回 400
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

// NewError 创建校验错误
func NewError(msg string) error {
	return &Error{Msg: msg}
}

// IsValidationError 判断是否为字段校验错误
func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// ValidateCostInput 校验新增消费记录的入参
// 按 description → category → userid → sum 顺序检查，遇到第一个错误即返回；
// 无副作用，全部通过返回 nil
func ValidateCostInput(description string, category models.Category, userID int64, sum float64) error {
	if strings.TrimSpace(description) == "" {
		return NewError("Description is required.")
	}
	if !category.Valid() {
		return NewError(fmt.Sprintf("Invalid category. Allowed categories: %s.",
			strings.Join(models.CategoryNames(), ", ")))
	}
	if userID <= 0 {
		return NewError("User id must be a positive number.")
	}
	if sum <= 0 {
		return NewError("Sum must be a positive number.")
	}
	return nil
}

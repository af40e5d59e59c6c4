package service

import "errors"

// 业务层哨兵错误，api 层用 errors.Is 翻译为对应状态码
var (
	// ErrUserNotFound 引用的用户不存在
	ErrUserNotFound = errors.New("user not found")
	// ErrCostNotFound 消费记录不存在
	ErrCostNotFound = errors.New("cost not found")
	// ErrDuplicateUser 用户编号已被占用
	ErrDuplicateUser = errors.New("user id already exists")
)

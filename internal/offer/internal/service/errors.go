package service

import (
	"errors"

	"github.com/alphahows/hows/internal/pkg/identity"
)

var (
	ErrUnresolvedIdentity = identity.ErrUnresolvedIdentity
	ErrNotFound           = errors.New("offer 不存在")
	ErrForbidden          = errors.New("没有权限")
	ErrInvalidRange       = errors.New("最低薪资不能高于最高薪资")
	ErrInvalidTransition  = errors.New("不允许的状态变更")
	ErrInvalidOperation   = errors.New("当前角色不能执行该操作")
)

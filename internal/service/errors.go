package service

import "errors"

// 错误文案即响应 message，handler 只负责映射状态码
var (
	ErrEmailTaken        = errors.New("Email already registered.")
	ErrUserNotExists     = errors.New("User does not exist with the given email")
	ErrInvalidPassword   = errors.New("Invalid password")
	ErrUserNotFound      = errors.New("User not found")
	ErrCommunityNotFound = errors.New("Community not found")
	ErrRoleNotFound      = errors.New("Role not found")
	ErrMemberNotFound    = errors.New("Member not found")
	ErrRoleExists        = errors.New("Role with the same name already exists")
	ErrMemberExists      = errors.New("User is already a member of this community")
	ErrNotAllowed        = errors.New("NOT_ALLOWED_ACCESS")

	// ErrDanglingReference 填充时外键指向的行不存在，整页失败
	ErrDanglingReference = errors.New("dangling reference")
)

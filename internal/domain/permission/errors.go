package permission

import "errors"

var (
	ErrPermissionNotFound = errors.New("permission not found")
	ErrEmptyRange         = errors.New("permission range contains no grantable days")
)

package user

import "errors"

var (
	ErrUserNotFound   = errors.New("không tìm thấy user")
	ErrUsernameExists = errors.New("username đã tồn tại trong hệ thống")
)

package product

import "errors"

var (
	ErrProductNotFound = errors.New("không tìm thấy sản phẩm")
	ErrURLExists       = errors.New("url đã tồn tại trong hệ thống")
)

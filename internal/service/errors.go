package service

import "errors"

// ErrNotFound 表示格式正確但查無資料，只用在單一國家的查詢
var ErrNotFound = errors.New("not found")

package service

import "errors"

var (
	ErrArtistNotFound      = errors.New("画师不存在")
	ErrArtistAlreadyExists = errors.New("画师已收录")
	ErrSuggestionNotFound  = errors.New("收录申请不存在")
	ErrSuggestionFinalized = errors.New("收录申请已处理，无法再次变更")
	ErrInvalidDaysRange    = errors.New("仅支持查询 7 天或 30 天的趋势")
)

// ErrorMap 业务错误对应的 HTTP 状态码
var ErrorMap = map[error]int{
	ErrArtistNotFound:      404,
	ErrArtistAlreadyExists: 409,
	ErrSuggestionNotFound:  404,
	ErrSuggestionFinalized: 409,
	ErrInvalidDaysRange:    400,
}

package util

// PtrString 用于将 string 转换为 *string
func PtrString(s string) *string {
	return &s
}

// PtrStringOrNil 空字符串返回 nil，便于落库为 NULL
func PtrStringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StrOrEmpty 解引用 *string，nil 返回空串
func StrOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

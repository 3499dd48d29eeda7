package consts

const (
	// ArtistPageSize 刷新任务分页大小，短页即为末页
	ArtistPageSize = 50
)

const (
	SuggestionStatusPending  = "pending"
	SuggestionStatusApproved = "approved"
	SuggestionStatusCreated  = "created"
	SuggestionStatusRejected = "rejected"
)

const (
	// ProfileURLPrefix 源站个人主页地址前缀，抓取结果缺失 url 时兜底
	ProfileURLPrefix = "https://x.com/"
)

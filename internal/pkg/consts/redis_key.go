package consts

const (
	ArtistTrends7DaysKey  = "artist:trends:7days:"
	ArtistTrends30DaysKey = "artist:trends:30days:"
)

const (
	RefreshJobLock = "lock:job:artist:refresh"
	PromoteJobLock = "lock:job:suggestion:promote"
)

package errno

const (
	StatusOK = 10000
)

const (
	TokenEmpty = 40000 + iota
	AccessTokenExpired
	TokenInvalid
)

const (
	InternalError = 50000 + iota
	InvalidParam
	ThreadNotFound
	ThreadForbidden
	CatalogUnavailable
)

package biz

import "time"

type CtxKey string

const (
	USER_KEY CtxKey = "user_id"

	TokenExpire = time.Hour * 2

	ACCESSTOKEN = "access_token"

	// CurrencySymbol is the store currency (Ghanaian cedi). All amounts are
	// stored in pesewas (1 cedi = 100 pesewas) and rendered with 2 decimals.
	CurrencySymbol = "GH₵"
)

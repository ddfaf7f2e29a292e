package util

import (
	"context"
	"net/http"

	"KasaMarket/app/common/consts/biz"
	"KasaMarket/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

func UserIdFromCtx(ctx context.Context) (int64, error) {
	if ctx == nil {
		return 0, errors.New(int(errno.TokenEmpty), "missing context")
	}

	switch val := ctx.Value(biz.USER_KEY).(type) {
	case int64:
		return val, nil
	}

	return 0, errors.New(int(errno.TokenEmpty), "unauthorized")
}

func InjectUserId2Ctx(r *http.Request, userId int64) {
	ctx := context.WithValue(r.Context(), biz.USER_KEY, userId)
	*r = *r.WithContext(ctx)
}

// TokenFromRequest reads the access token from the cookie first, then the
// header of the same name.
func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(biz.ACCESSTOKEN); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.Header.Get(biz.ACCESSTOKEN)
}

package middleware

import (
	"net/http"

	"KasaMarket/app/common/consts/errno"
	"KasaMarket/app/common/util"

	"github.com/golang-jwt/jwt/v4"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

type jwtClaims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the access token locally. Token issuing and
// refresh belong to the account service; this gateway only verifies.
type AuthMiddleware struct {
	accessSecret string
}

func NewAuthMiddleware(accessSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		accessSecret: accessSecret,
	}
}

func (m *AuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := util.TokenFromRequest(r)
		if accessToken == "" {
			httpx.Error(w, errors.New(int(errno.TokenEmpty), "token is null"))
			return
		}

		claims, err := m.parseToken(accessToken)
		if err != nil {
			httpx.Error(w, err)
			return
		}

		util.InjectUserId2Ctx(r, claims.UserID)
		next(w, r)
	}
}

func (m *AuthMiddleware) parseToken(tokenStr string) (*jwtClaims, error) {
	if m.accessSecret == "" {
		return nil, errors.New(int(errno.InternalError), "token secret is empty")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(int(errno.TokenInvalid), "unexpected signing method")
		}
		return []byte(m.accessSecret), nil
	})
	if err != nil {
		if jwtErr, ok := err.(*jwt.ValidationError); ok && jwtErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, errors.New(int(errno.AccessTokenExpired), "access token expired")
		}
		return nil, errors.New(int(errno.TokenInvalid), "invalid token")
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, errors.New(int(errno.TokenInvalid), "invalid token claims")
	}
	return claims, nil
}

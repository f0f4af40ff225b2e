package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type userIDKey struct{}

// Claims полезная нагрузка JWT токена сервиса
type Claims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// Auth проверяет Bearer JWT токен (HS256) и кладет ID пользователя в контекст
// Токены выпускает login handler после аутентификации в AuthService
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, "отсутствует токен авторизации")
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})

			if err != nil || !token.Valid || claims.UserID <= 0 {
				handlers.RespondUnauthorized(w, "некорректный токен авторизации")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext возвращает ID аутентифицированного пользователя
// Второе значение false, если запрос прошел мимо Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

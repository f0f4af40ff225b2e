package login

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/authservice"
)

const (
	msgInvalidBody        = "некорректное тело запроса"
	msgEmptyCredentials   = "email и пароль обязательны"
	msgInvalidCredentials = "неверный email или пароль"
)

type Handler struct {
	authClient AuthServiceClient
	jwtSecret  []byte
	tokenTTL   time.Duration
	logger     Logger
}

func NewHandler(authClient AuthServiceClient, jwtSecret string, tokenTTL time.Duration, logger Logger) *Handler {
	return &Handler{
		authClient: authClient,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		logger:     logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		h.logger.Warn("POST /auth/login - Empty credentials")
		handlers.RespondBadRequest(w, msgEmptyCredentials)
		return
	}

	user, err := h.authClient.Authenticate(r.Context(), authservice.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Authentication failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	token, err := h.issueToken(user.ID)
	if err != nil {
		h.logger.Error("POST /auth/login - Failed to sign token: user_id=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/login - User authenticated: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusOK, &LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.tokenTTL.Seconds()),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
	})
}

func (h *Handler) issueToken(userID int64) (string, error) {
	now := time.Now()
	claims := middleware.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}

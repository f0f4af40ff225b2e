package login

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/integrations/authservice"
)

type AuthServiceClient interface {
	Authenticate(ctx context.Context, creds authservice.Credentials) (*authservice.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

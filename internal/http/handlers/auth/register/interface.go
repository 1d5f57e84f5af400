package register

import (
	"context"

	authservice "github.com/magabrotheeeer/pulsefit/internal/services/auth"
)

// Service регистрирует участника вместе с первым абонементом.
type Service interface {
	Register(ctx context.Context, in authservice.RegisterInput) (*authservice.Registration, error)
}

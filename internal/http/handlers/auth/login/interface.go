package login

import (
	"context"

	authservice "github.com/magabrotheeeer/pulsefit/internal/services/auth"
)

// Service проверяет учётные данные и выдаёт токен.
type Service interface {
	Login(ctx context.Context, email, password string) (*authservice.Login, error)
}

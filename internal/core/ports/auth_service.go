package ports

import "context"

// AuthService authenticates the site operator and issues API tokens for the
// admin surface.
type AuthService interface {
	Login(ctx context.Context, password string) (token string, err error)
}

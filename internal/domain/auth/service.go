package auth

import "context"

// AuthService resolves a login email into a session.
//
// No credential is verified beyond the email lookup itself: the known
// super-admin address bypasses the lookup entirely, any other email must
// match an employee record. Real credential verification is a deployment
// concern left outside this service.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

package interfaces

import "context"

// IIdentityProvider abstracts the external identity/auth service.
//
// It is the source of truth for portal logins; this service only consumes the
// resulting user ids. ResolveUser provisions (or finds) a login identity for
// a client contact. ResolveRole centralizes identity-to-role resolution so no
// call site queries role data ad hoc.

type IIdentityProvider interface {
	ResolveUser(ctx context.Context, email, name string) (userID string, err error)
	ResolveRole(ctx context.Context, userID string) (role string, err error)
}

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

package auth

import "wolfstreet/internal/model"

// Principal is the authenticated identity attached to a request after the
// bearer guard succeeds: the resolved user plus the originating session.
type Principal struct {
	User    *model.User
	Session *model.Session
}

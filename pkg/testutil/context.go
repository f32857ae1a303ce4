package testutil

import (
	"net/http"

	id "warden/pkg/domain"
	"warden/pkg/requestcontext"
)

// WithActor adds an authenticated actor to the request context.
// This simulates what the auth middleware would do for authenticated requests.
func WithActor(req *http.Request, userID string) *http.Request {
	actor, err := id.ParseUserID(userID)
	if err != nil {
		return req
	}
	return req.WithContext(requestcontext.WithActorID(req.Context(), actor))
}

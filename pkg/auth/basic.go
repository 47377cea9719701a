package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
)

var (
	ErrMissingCredentials = errors.New("missing basic auth credentials")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// BasicAuth checks HTTP basic credentials against a fixed user table.
type BasicAuth struct {
	realm string
	users map[string]string
}

func NewBasicAuth(realm string, users map[string]string) *BasicAuth {
	if users == nil {
		users = make(map[string]string)
	}
	return &BasicAuth{realm: realm, users: users}
}

func (ba *BasicAuth) ValidateCredentials(username, password string) bool {
	stored, ok := ba.users[username]
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}

// Authenticate returns the user named in the request's Authorization header.
func (ba *BasicAuth) Authenticate(r *http.Request) (string, error) {
	username, password, ok := r.BasicAuth()
	if !ok {
		return "", ErrMissingCredentials
	}

	if !ba.ValidateCredentials(username, password) {
		return "", ErrInvalidCredentials
	}

	return username, nil
}

// Middleware rejects unauthenticated requests with 401 and stores the user in
// the request context otherwise.
func (ba *BasicAuth) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, err := ba.Authenticate(r)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+ba.realm+`"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next(w, r.WithContext(WithUser(r.Context(), username)))
	}
}

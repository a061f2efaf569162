package service

import (
	"time"

	"github.com/lakefield/tasklist/internal/todo/domain"
	"github.com/lakefield/tasklist/pkg/jwtx"
)

// TokenService issues bearer tokens binding a user id and username to a
// session-less credential. There is no revocation; tokens are good until
// they expire.
type TokenService struct {
	Signer *jwtx.HS256
	Issuer string
	TTL    time.Duration
}

// Issue signs a token for the given user.
func (s *TokenService) Issue(user domain.User) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}
	claims := jwtx.NewClaims(user.ID, user.Username, s.Issuer, ttl, time.Now().UTC())
	return s.Signer.Sign(claims)
}

// Verifier exposes the underlying verifier for the authn middleware.
func (s *TokenService) Verifier() jwtx.Verifier { return s.Signer }

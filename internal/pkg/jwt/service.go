package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTypeAccess = "access"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims identify the candidate a request acts for. Tokens are issued by the
// account service and only verified here.
type Claims struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	TokenType   string    `json:"token_type"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateAccessToken(candidateID uuid.UUID) (string, error)
	ValidateToken(tokenString string) (Claims, error)
}

type HMACService struct {
	accessSecret    []byte
	accessExpiresIn time.Duration

	now func() time.Time
}

func NewHMACService(accessSecret string, accessExpiresIn time.Duration) *HMACService {
	return &HMACService{
		accessSecret:    []byte(accessSecret),
		accessExpiresIn: accessExpiresIn,
		now:             time.Now,
	}
}

func (s *HMACService) GenerateAccessToken(candidateID uuid.UUID) (string, error) {
	if len(s.accessSecret) == 0 || s.accessExpiresIn <= 0 || candidateID == uuid.Nil {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		CandidateID: candidateID,
		TokenType:   TokenTypeAccess,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.accessExpiresIn)),
			Subject:   candidateID.String(),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.accessSecret)
}

func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
		jwtlib.WithExpirationRequired(),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}
	if c.TokenType != TokenTypeAccess || c.CandidateID == uuid.Nil {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleMember Role = "member"
	RoleStaff  Role = "staff"
)

func (r Role) Valid() bool {
	return r == RoleMember || r == RoleStaff
}

// Principal is the authenticated caller every workflow operation is checked against.
type Principal struct {
	ReaderID int64  `json:"readerId"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func (p Principal) Valid() bool {
	return p.ReaderID > 0 && p.Role.Valid()
}

func (p Principal) IsStaff() bool {
	return p.Role == RoleStaff
}

// CanActFor reports whether p may operate on records owned by readerID.
func (p Principal) CanActFor(readerID int64) bool {
	return p.IsStaff() || p.ReaderID == readerID
}

type Config struct {
	JWTSecret string        `yaml:"jwtSecret" envconfig:"JWT_SECRET"`
	TokenTTL  time.Duration `yaml:"tokenTTL" envconfig:"JWT_TTL"`
}

type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

var (
	ErrNoPrincipal  = errors.New("no principal in context")
	ErrInvalidToken = errors.New("invalid token")
)

func IssueToken(cfg Config, p Principal, now time.Time) (string, time.Time, error) {
	exp := now.Add(cfg.TokenTTL)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(p.ReaderID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Username: p.Username,
		Role:     p.Role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

func ParseToken(cfg Config, tokenStr string) (Principal, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}
	readerID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Principal{}, ErrInvalidToken
	}
	p := Principal{ReaderID: readerID, Username: claims.Username, Role: claims.Role}
	if !p.Valid() {
		return Principal{}, ErrInvalidToken
	}
	return p, nil
}

type principalKey struct{}

func SetPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func GetPrincipal(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok {
		return Principal{}, ErrNoPrincipal
	}
	return p, nil
}

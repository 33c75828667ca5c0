package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	cfg := auth.Config{JWTSecret: "secret", TokenTTL: time.Hour}
	p := auth.Principal{ReaderID: 42, Username: "peace", Role: auth.RoleMember}

	token, exp, err := auth.IssueToken(cfg, p, time.Now())
	require.NoError(t, err)
	require.True(t, exp.After(time.Now()))

	got, err := auth.ParseToken(cfg, token)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestParseToken_Rejects(t *testing.T) {
	cfg := auth.Config{JWTSecret: "secret", TokenTTL: time.Hour}
	p := auth.Principal{ReaderID: 1, Username: "staff", Role: auth.RoleStaff}

	expired, _, err := auth.IssueToken(cfg, p, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	foreign, _, err := auth.IssueToken(auth.Config{JWTSecret: "other", TokenTTL: time.Hour}, p, time.Now())
	require.NoError(t, err)
	badRole, _, err := auth.IssueToken(cfg, auth.Principal{ReaderID: 1, Role: "guest"}, time.Now())
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":   expired,
		"signature": foreign,
		"role":      badRole,
		"garbage":   "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := auth.ParseToken(cfg, token)
			require.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestPrincipal_CanActFor(t *testing.T) {
	member := auth.Principal{ReaderID: 1, Role: auth.RoleMember}
	staff := auth.Principal{ReaderID: 2, Role: auth.RoleStaff}

	require.True(t, member.CanActFor(1))
	require.False(t, member.CanActFor(3))
	require.True(t, staff.CanActFor(3))
	require.False(t, auth.Principal{ReaderID: 5, Role: "guest"}.Valid())
}

func TestPrincipalContext(t *testing.T) {
	_, err := auth.GetPrincipal(context.Background())
	require.ErrorIs(t, err, auth.ErrNoPrincipal)

	p := auth.Principal{ReaderID: 7, Role: auth.RoleMember}
	got, err := auth.GetPrincipal(auth.SetPrincipal(context.Background(), p))
	require.NoError(t, err)
	require.Equal(t, p, got)
}

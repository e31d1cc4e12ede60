package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGate_LoginLogout(t *testing.T) {
	gate := NewGate(NewStaticVerifier("admin", "admin123"), nil)
	require.Equal(t, StateAnonymous, gate.State())

	assert.False(t, gate.Login("admin", "wrong"))
	assert.Equal(t, StateAnonymous, gate.State())

	assert.True(t, gate.Login("admin", "admin123"))
	assert.Equal(t, StateAuthenticated, gate.State())
	assert.True(t, gate.Authenticated())

	// A bad attempt while authenticated does not close the gate.
	assert.False(t, gate.Login("admin", "nope"))
	assert.True(t, gate.Authenticated())

	gate.Logout()
	assert.Equal(t, StateAnonymous, gate.State())

	gate.Logout()
	assert.False(t, gate.Authenticated())
}

func TestGate_NilVerifierRejectsEverything(t *testing.T) {
	gate := NewGate(nil, nil)
	assert.False(t, gate.Login("", ""))
	assert.False(t, gate.Login("admin", "admin123"))
}

func TestStaticVerifier(t *testing.T) {
	v := NewStaticVerifier("admin", "admin123")

	cases := []struct {
		name     string
		user     string
		password string
		want     bool
	}{
		{"exact match", "admin", "admin123", true},
		{"wrong password", "admin", "admin124", false},
		{"wrong user", "Admin", "admin123", false},
		{"empty", "", "", false},
		{"prefix only", "admin", "admin", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v.Verify(tc.user, tc.password))
		})
	}

	assert.False(t, NewStaticVerifier("", "").Verify("", ""))
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	v := NewBcryptVerifier("coordinator", string(hash))
	assert.True(t, v.Verify("coordinator", "s3cret"))
	assert.False(t, v.Verify("coordinator", "secret"))
	assert.False(t, v.Verify("admin", "s3cret"))
}

func TestVerifierFunc(t *testing.T) {
	calls := 0
	v := VerifierFunc(func(u, p string) bool {
		calls++
		return u == p
	})
	gate := NewGate(v, nil)

	assert.True(t, gate.Login("same", "same"))
	assert.Equal(t, 1, calls)
}

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_SignedOut_IsClear(t *testing.T) {
	m, _ := setupManager(t)
	g := NewGate(m)

	assert.Equal(t, GateClear, g.State())
}

func TestGate_FreshLogin_Blocks(t *testing.T) {
	m, _ := setupManager(t)
	g := NewGate(m)
	ctx := context.Background()

	_, err := m.Login(ctx, "admin@greenwood.edu", "admin123")
	require.NoError(t, err)
	g.Reset()

	assert.Equal(t, GateBlocked, g.State())
}

func TestGate_MarkVerified_Clears(t *testing.T) {
	m, _ := setupManager(t)
	g := NewGate(m)
	ctx := context.Background()

	_, err := m.Login(ctx, "admin@greenwood.edu", "admin123")
	require.NoError(t, err)
	g.Reset()

	require.NoError(t, m.MarkEmailVerified(ctx))
	assert.Equal(t, GateClear, g.State())
}

func TestGate_Skip_ClearsWithoutVerifying(t *testing.T) {
	m, _ := setupManager(t)
	g := NewGate(m)
	ctx := context.Background()

	_, err := m.Login(ctx, "admin@greenwood.edu", "admin123")
	require.NoError(t, err)
	g.Reset()

	g.Skip()

	assert.Equal(t, GateClear, g.State())
	assert.False(t, m.EmailVerified(), "skip must not mark the email verified")
	assert.True(t, m.NeedsVerification())
}

func TestGate_ReloginAfterSkip_BlocksAgain(t *testing.T) {
	m, _ := setupManager(t)
	g := NewGate(m)
	ctx := context.Background()

	_, err := m.Login(ctx, "admin@greenwood.edu", "admin123")
	require.NoError(t, err)
	g.Reset()
	g.Skip()

	require.NoError(t, m.Logout(ctx))
	_, err = m.Login(ctx, "admin@greenwood.edu", "admin123")
	require.NoError(t, err)
	g.Reset()

	assert.Equal(t, GateBlocked, g.State())
}

func TestGate_Register_StartsClear(t *testing.T) {
	m, _ := setupManager(t)
	g := NewGate(m)
	ctx := context.Background()

	_, err := m.Register(ctx, RegisterRequest{Name: "New User", Email: "nu@uni.edu", Role: "Student"})
	require.NoError(t, err)

	assert.Equal(t, GateClear, g.State())
}

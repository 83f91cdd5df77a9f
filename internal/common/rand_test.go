package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString_LengthAndCharset(t *testing.T) {
	s, err := MakeRandHexString(16)
	require.NoError(t, err)
	assert.Len(t, s, 32)
	for _, r := range s {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestMakeRandHexString_Unique(t *testing.T) {
	a, err := MakeRandHexString(16)
	require.NoError(t, err)
	b, err := MakeRandHexString(16)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret123")
	WipeByteArray(b)
	for _, v := range b {
		assert.Zero(t, v)
	}
	WipeByteArray(nil) // must not panic
}

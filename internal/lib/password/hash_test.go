package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "обычный пароль", password: "user123"},
		{name: "пустой пароль", password: ""},
		{name: "юникод", password: "пароль-с-юникодом"},
		{name: "спецсимволы", password: "!@#$%^&*()_+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := Hash(tt.password)
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)
			assert.True(t, strings.HasPrefix(hash, "$2a$"))
			assert.NoError(t, Compare(hash, tt.password))
		})
	}
}

func TestHash_TooLong(t *testing.T) {
	_, err := Hash(strings.Repeat("a", MaxBytes+1))
	assert.ErrorIs(t, err, ErrTooLong)

	// 37 символов кириллицы занимают 74 байта.
	_, err = Hash(strings.Repeat("ж", 37))
	assert.ErrorIs(t, err, ErrTooLong)

	hash, err := Hash(strings.Repeat("a", MaxBytes))
	require.NoError(t, err)
	assert.NoError(t, Compare(hash, strings.Repeat("a", MaxBytes)))
}

func TestHash_Salted(t *testing.T) {
	first, err := Hash("admin123")
	require.NoError(t, err)
	second, err := Hash("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCompare(t *testing.T) {
	hash, err := Hash("correct")
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  error
	}{
		{name: "совпадает", hash: hash, password: "correct"},
		{name: "другой пароль", hash: hash, password: "wrong", wantErr: ErrMismatch},
		{name: "регистр важен", hash: hash, password: "CORRECT", wantErr: ErrMismatch},
		{name: "пароль открытым текстом вместо хеша", hash: "correct", password: "correct", wantErr: ErrMismatch},
		{name: "пустой хеш", hash: "", password: "correct", wantErr: ErrMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Compare(tt.hash, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCompareDummy(t *testing.T) {
	assert.ErrorIs(t, CompareDummy("anything"), ErrMismatch)
	assert.ErrorIs(t, CompareDummy("pulsefit-dummy-password"), ErrMismatch)
}

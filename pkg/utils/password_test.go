package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{name: "normal secret", secret: "pw1"},
		{name: "long secret", secret: "correct horse battery staple 42!"},
		{name: "empty secret", secret: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed := HashPassword(tt.secret)
			require.NotEmpty(t, hashed)
			assert.NotEqual(t, tt.secret, hashed)
			assert.True(t, CheckPassword(tt.secret, hashed))
		})
	}
}

func TestHashPasswordSalted(t *testing.T) {
	// 同一明文两次哈希结果必须不同（带盐），但都能通过校验
	a := HashPassword("pw1")
	b := HashPassword("pw1")
	assert.NotEqual(t, a, b)
	assert.True(t, CheckPassword("pw1", a))
	assert.True(t, CheckPassword("pw1", b))
}

func TestCheckPassword(t *testing.T) {
	hashed := HashPassword("pw1")

	tests := []struct {
		name   string
		secret string
		hashed string
		want   bool
	}{
		{name: "match", secret: "pw1", hashed: hashed, want: true},
		{name: "wrong secret", secret: "pw2", hashed: hashed, want: false},
		{name: "empty secret", secret: "", hashed: hashed, want: false},
		{name: "malformed hash fails closed", secret: "pw1", hashed: "not-a-bcrypt-hash", want: false},
		{name: "empty hash fails closed", secret: "pw1", hashed: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.secret, tt.hashed))
		})
	}
}

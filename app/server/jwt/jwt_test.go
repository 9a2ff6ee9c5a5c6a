package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		method   string
		lifetime time.Duration
		wantErr  bool
	}{
		{name: "valid HS256", key: "secret", method: "HS256", lifetime: 30 * time.Minute, wantErr: false},
		{name: "valid HS512", key: "secret", method: "HS512", lifetime: 30 * time.Minute, wantErr: false},
		{name: "empty key", key: "", method: "HS256", lifetime: 30 * time.Minute, wantErr: true},
		{name: "unknown method", key: "secret", method: "HS1024", lifetime: 30 * time.Minute, wantErr: true},
		{name: "asymmetric method", key: "secret", method: "RS256", lifetime: 30 * time.Minute, wantErr: true},
		{name: "zero lifetime", key: "secret", method: "HS256", lifetime: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.key, tt.method, tt.lifetime)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignAndParse(t *testing.T) {
	j, err := New("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	token, expires, err := j.SignUser("someone@gilab.local")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := j.ParseUser(token)
	require.NoError(t, err)
	assert.Equal(t, "someone@gilab.local", user.Email)
	assert.Equal(t, expires, user.Expires)
	assert.Greater(t, user.Expires, time.Now().Unix())
}

func TestParseRejectsExpired(t *testing.T) {
	j, err := New("test-secret", "HS256", time.Minute)
	require.NoError(t, err)

	// 直接构造一个已过期的令牌，密钥与验证方一致
	claims := jwtlib.MapClaims{
		"sub": "someone@gilab.local",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = j.ParseUser(expired)
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signer, err := New("secret-a", "HS256", time.Minute)
	require.NoError(t, err)
	verifier, err := New("secret-b", "HS256", time.Minute)
	require.NoError(t, err)

	token, _, err := signer.SignUser("someone@gilab.local")
	require.NoError(t, err)

	_, err = verifier.ParseUser(token)
	assert.Error(t, err)
}

func TestParseRejectsWrongMethod(t *testing.T) {
	verifier, err := New("test-secret", "HS256", time.Minute)
	require.NoError(t, err)

	// 签名算法与验证方固定的算法不一致时必须拒绝
	claims := jwtlib.MapClaims{
		"sub": "someone@gilab.local",
		"exp": time.Now().Add(time.Minute).Unix(),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = verifier.ParseUser(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	j, err := New("test-secret", "HS256", time.Minute)
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err = j.ParseUser(token)
		assert.Error(t, err)
	}
}

func TestParseRejectsMissingSubject(t *testing.T) {
	j, err := New("test-secret", "HS256", time.Minute)
	require.NoError(t, err)

	claims := jwtlib.MapClaims{
		"exp": time.Now().Add(time.Minute).Unix(),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = j.ParseUser(token)
	assert.Error(t, err)
}

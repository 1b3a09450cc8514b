package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", "credentials.json"))
}

func TestStore_LoadMissingFile(t *testing.T) {
	creds, err := testStore(t).Load()
	require.NoError(t, err)
	assert.Nil(t, creds, "not logged in is not an error")
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := testStore(t)
	in := &Credentials{
		Token: "header.payload.signature",
		Profile: Profile{
			ID:    7,
			Name:  "Ada Candidate",
			Email: "ada@example.com",
			Role:  "POSTULANTE",
		},
	}

	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in, out)
}

func TestStore_SavePermissions(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save(&Credentials{Token: "tok"}))

	info, err := os.Stat(store.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_SaveRejectsEmpty(t *testing.T) {
	store := testStore(t)
	assert.Error(t, store.Save(nil))
	assert.Error(t, store.Save(&Credentials{}))
}

func TestStore_LoadCorruptFile(t *testing.T) {
	store := testStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0o700))
	require.NoError(t, os.WriteFile(store.path, []byte("{not json"), 0o600))

	_, err := store.Load()
	assert.Error(t, err)
}

func TestStore_Clear(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save(&Credentials{Token: "tok"}))
	require.NoError(t, store.Clear())

	creds, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)

	assert.NoError(t, store.Clear(), "clearing twice is a no-op")
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "ada@example.com",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestExpired(t *testing.T) {
	now := time.Now()

	assert.True(t, Expired(signedToken(t, now.Add(-time.Minute)), now))
	assert.False(t, Expired(signedToken(t, now.Add(time.Hour)), now))
}

func TestExpired_NoClaimOrGarbage(t *testing.T) {
	now := time.Now()

	claims := jwt.MapClaims{"sub": "ada@example.com"}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	assert.False(t, Expired(signed, now), "tokens without exp are left to the backend")
	assert.False(t, Expired("not-a-jwt", now))
}

package auth

import (
	"testing"

	"github.com/dajor/bewirtungsbeleg-sub002/pkg/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	manager := NewJWTManager("test-secret")
	user := &model.User{
		ID:    uuid.New(),
		Email: "user@example.com",
		Role:  model.RoleUser,
	}

	token, err := manager.GenerateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, model.RoleUser, claims.Role)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret")
	user := &model.User{ID: uuid.New(), Email: "user@example.com", Role: model.RoleUser}

	token, err := manager.GenerateAccessToken(user)
	require.NoError(t, err)

	other := NewJWTManager("different-secret")
	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret")

	_, err := manager.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/stretchr/testify/require"
)

func testAdmin() *models.Admin {
	return &models.Admin{
		ID:          uuid.New(),
		Email:       "pat@example.com",
		AccessLevel: models.AccessStaff,
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	manager := NewManager([]byte("test-secret"), time.Hour)
	admin := testAdmin()

	token, err := manager.Issue(admin)
	require.NoError(t, err)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	require.Equal(t, admin.ID, claims.AdminID)
	require.Equal(t, admin.Email, claims.Email)
	require.Equal(t, models.AccessStaff, claims.Access)
}

func TestVerifyWrongSecret(t *testing.T) {
	manager := NewManager([]byte("test-secret"), time.Hour)

	token, err := manager.Issue(testAdmin())
	require.NoError(t, err)

	other := NewManager([]byte("different-secret"), time.Hour)
	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	manager := NewManager([]byte("test-secret"), -time.Minute)

	token, err := manager.Issue(testAdmin())
	require.NoError(t, err)

	_, err = manager.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	manager := NewManager([]byte("test-secret"), time.Hour)

	_, err := manager.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)

	require.True(t, CheckPassword(hash, "hunter22"))
	require.False(t, CheckPassword(hash, "hunter23"))
}

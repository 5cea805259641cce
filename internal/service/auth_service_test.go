package service

import (
	"testing"
	"time"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestJWT() {
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	initTestJWT()
	svc := newTestServices(t)

	registered, err := svc.auth.Register("staff@schronisko.pl", "sekret123", "Ola", "Kot", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, registered.User.Role)
	assert.NotEmpty(t, registered.AccessToken)

	login, err := svc.auth.Login("staff@schronisko.pl", "sekret123")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, login.User.ID)

	claims, err := utils.ValidateAccessToken(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "staff@schronisko.pl", claims.Email)
	assert.Equal(t, models.RoleStaff, claims.Role)
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	initTestJWT()
	svc := newTestServices(t)

	_, err := svc.auth.Register("staff@schronisko.pl", "sekret123", "Ola", "Kot", "")
	require.NoError(t, err)

	_, err = svc.auth.Register("staff@schronisko.pl", "inne456", "Jan", "Pies", "")
	assert.Error(t, err)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	initTestJWT()
	svc := newTestServices(t)

	_, err := svc.auth.Register("staff@schronisko.pl", "sekret123", "Ola", "Kot", "")
	require.NoError(t, err)

	_, err = svc.auth.Login("staff@schronisko.pl", "zle-haslo")
	assert.Error(t, err)
	_, err = svc.auth.Login("nieznany@schronisko.pl", "sekret123")
	assert.Error(t, err)
}

func TestRefreshAndLogout(t *testing.T) {
	initTestJWT()
	svc := newTestServices(t)

	registered, err := svc.auth.Register("admin@schronisko.pl", "sekret123", "Ala", "Admin", models.RoleAdmin)
	require.NoError(t, err)

	accessToken, err := svc.auth.RefreshAccessToken(registered.RefreshToken)
	require.NoError(t, err)
	claims, err := utils.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	require.NoError(t, svc.auth.Logout(registered.RefreshToken))

	_, err = svc.auth.RefreshAccessToken(registered.RefreshToken)
	assert.Error(t, err)
}

package services

import (
	"testing"

	"food_order/internal/models"
	"food_order/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user, err := svc.Register(RegisterInput{
		Username:       "kovacs",
		Email:          "kovacs@example.hu",
		Password:       "Titok12",
		Phone:          "+36201234567",
		DefaultAddress: "Fő utca 1.",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleUser), user.Role)
	assert.NotEqual(t, "Titok12", user.Password, "password must be stored hashed")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Titok12")))

	got, err := svc.Login("kovacs@example.hu", "Titok12")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestLoginDoesNotRevealWhichCredentialFailed(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	_, err := svc.Register(RegisterInput{Username: "kovacs", Email: "kovacs@example.hu", Password: "Titok12"})
	require.NoError(t, err)

	_, badEmail := svc.Login("ismeretlen@example.hu", "Titok12")
	_, badPassword := svc.Login("kovacs@example.hu", "rossz")
	require.ErrorIs(t, badEmail, ErrWrongCredentials)
	require.ErrorIs(t, badPassword, ErrWrongCredentials)
	assert.Equal(t, badEmail.Error(), badPassword.Error())
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	_, err := svc.Register(RegisterInput{Username: "kovacs", Email: "kovacs@example.hu", Password: "Titok12"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Username: "masik", Email: "kovacs@example.hu", Password: "Titok12"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestPasswordPolicy(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"Titok12", true},
		{"aB3", false},      // too short
		{"titkos12", false}, // no upper case
		{"TITKOS12", false}, // no lower case
		{"Titkoska", false}, // no digit
		{"Jelszo1", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, validPassword(tc.password), tc.password)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	_, err := svc.Register(RegisterInput{Username: "kovacs", Email: "kovacs@example.hu", Password: "gyenge"})
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user, err := svc.Register(RegisterInput{Username: "kovacs", Email: "kovacs@example.hu", Password: "Titok12"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(user.ID, UpdateProfileInput{
		Username:       "kovacs.j",
		Email:          "kovacs.j@example.hu",
		Phone:          "+36301112222",
		DefaultAddress: "Kis utca 2.",
	})
	require.NoError(t, err)
	assert.Equal(t, "kovacs.j", updated.Username)
	assert.Equal(t, "+36301112222", updated.Phone)

	// Old login still works: no password change was requested.
	_, err = svc.Login("kovacs.j@example.hu", "Titok12")
	require.NoError(t, err)
}

func TestUpdateProfilePasswordChange(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user, err := svc.Register(RegisterInput{Username: "kovacs", Email: "kovacs@example.hu", Password: "Titok12"})
	require.NoError(t, err)

	// New password without the current one is rejected.
	_, err = svc.UpdateProfile(user.ID, UpdateProfileInput{
		Username: "kovacs", Email: "kovacs@example.hu", NewPassword: "Ujabb34",
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	// Wrong current password is rejected.
	_, err = svc.UpdateProfile(user.ID, UpdateProfileInput{
		Username: "kovacs", Email: "kovacs@example.hu", OldPassword: "rossz", NewPassword: "Ujabb34",
	})
	require.ErrorIs(t, err, ErrWrongCredentials)

	_, err = svc.UpdateProfile(user.ID, UpdateProfileInput{
		Username: "kovacs", Email: "kovacs@example.hu", OldPassword: "Titok12", NewPassword: "Ujabb34",
	})
	require.NoError(t, err)

	_, err = svc.Login("kovacs@example.hu", "Ujabb34")
	require.NoError(t, err)
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	_, err := svc.Register(RegisterInput{Username: "kovacs", Email: "kovacs@example.hu", Password: "Titok12"})
	require.NoError(t, err)
	other, err := svc.Register(RegisterInput{Username: "szabo", Email: "szabo@example.hu", Password: "Titok12"})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(other.ID, UpdateProfileInput{Username: "szabo", Email: "kovacs@example.hu"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileEndpoints(t *testing.T) {
	app := newTestApp(t)
	token := app.registerAndLogin(t, "kovacs", "kovacs@example.hu", "")

	rec := app.request(t, http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "kovacs", profile.Username)

	rec = app.request(t, http.MethodPut, "/api/users/profile", token, gin.H{
		"username": "kovacs.j",
		"email":    "kovacs@example.hu",
		"phone":    "+36301112222",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.request(t, http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "kovacs.j", profile.Username)
}

func TestProfileRequiresToken(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, http.StatusUnauthorized, app.request(t, http.MethodGet, "/api/users/profile", "", nil).Code)
}

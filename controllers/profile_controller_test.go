package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"city-portal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func profileRouter(profiles ProfileManager, session *models.Session) *gin.Engine {
	router := gin.New()
	ctrl := &ProfileController{profiles: profiles, uploadFolder: "./uploads"}

	group := router.Group("/", withSession(session))
	group.GET("/perfil", ctrl.GetProfile)
	group.PATCH("/perfil", ctrl.UpdateProfile)
	group.DELETE("/perfil/avatar", ctrl.DeleteAvatar)
	group.DELETE("/perfil/cover", ctrl.DeleteCover)
	return router
}

func TestGetProfile_Success(t *testing.T) {
	session := &models.Session{UserID: uuid.New()}
	profiles := &mockProfileManager{}
	profiles.On("Fetch", mock.Anything, session).
		Return(&models.Profile{ID: session.UserID, Username: strPtr("ana")}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/perfil", nil)
	profileRouter(profiles, session).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"ana"`)
}

func TestGetProfile_NoSession(t *testing.T) {
	profiles := &mockProfileManager{}
	profiles.On("Fetch", mock.Anything, (*models.Session)(nil)).
		Return(nil, models.ErrNotAuthenticated)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/perfil", nil)
	profileRouter(profiles, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetProfile_NotFound(t *testing.T) {
	session := &models.Session{UserID: uuid.New()}
	profiles := &mockProfileManager{}
	profiles.On("Fetch", mock.Anything, session).Return(nil, models.ErrProfileNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/perfil", nil)
	profileRouter(profiles, session).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile not found")
}

func TestGetProfile_BackendError(t *testing.T) {
	session := &models.Session{UserID: uuid.New()}
	profiles := &mockProfileManager{}
	profiles.On("Fetch", mock.Anything, session).Return(nil, assert.AnError)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/perfil", nil)
	profileRouter(profiles, session).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestUpdateProfile_Success(t *testing.T) {
	session := &models.Session{UserID: uuid.New()}
	profiles := &mockProfileManager{}
	profiles.On("Update", mock.Anything, session,
		models.UpdateProfileRequest{Username: strPtr("novo")}).
		Return(&models.Profile{ID: session.UserID, Username: strPtr("novo")}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/perfil",
		strings.NewReader(`{"username":"novo"}`))
	req.Header.Set("Content-Type", "application/json")
	profileRouter(profiles, session).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool           `json:"success"`
		Data    models.Profile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotNil(t, body.Data.Username)
	assert.Equal(t, "novo", *body.Data.Username)
	profiles.AssertExpectations(t)
}

func TestUpdateProfile_InvalidBody(t *testing.T) {
	session := &models.Session{UserID: uuid.New()}
	profiles := &mockProfileManager{}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/perfil", strings.NewReader("not-json"))
	req.Header.Set("Content-Type", "application/json")
	profileRouter(profiles, session).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	profiles.AssertNotCalled(t, "Update")
}

func TestUpdateProfile_BackendError(t *testing.T) {
	session := &models.Session{UserID: uuid.New()}
	profiles := &mockProfileManager{}
	profiles.On("Update", mock.Anything, session,
		models.UpdateProfileRequest{Username: strPtr("novo")}).
		Return(nil, assert.AnError)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/perfil",
		strings.NewReader(`{"username":"novo"}`))
	req.Header.Set("Content-Type", "application/json")
	profileRouter(profiles, session).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDeleteAvatar_BackendError(t *testing.T) {
	session := &models.Session{UserID: uuid.New()}
	profiles := &mockProfileManager{}
	profiles.On("DeleteAvatar", mock.Anything, session).Return(nil, assert.AnError)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/perfil/avatar", nil)
	profileRouter(profiles, session).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDeleteAvatar(t *testing.T) {
	session := &models.Session{UserID: uuid.New()}
	profiles := &mockProfileManager{}
	profiles.On("DeleteAvatar", mock.Anything, session).
		Return(&models.Profile{ID: session.UserID}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/perfil/avatar", nil)
	profileRouter(profiles, session).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Avatar removed successfully")
	assert.NotContains(t, rec.Body.String(), "avatar_url")
}

func TestDeleteCover(t *testing.T) {
	session := &models.Session{UserID: uuid.New()}
	profiles := &mockProfileManager{}
	profiles.On("DeleteCover", mock.Anything, session).
		Return(&models.Profile{ID: session.UserID}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/perfil/cover", nil)
	profileRouter(profiles, session).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cover removed successfully")
}

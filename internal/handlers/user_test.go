package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/metaphorce/taskflow/internal/dto"
	"github.com/metaphorce/taskflow/internal/models"
	"github.com/metaphorce/taskflow/internal/repository"
	"github.com/metaphorce/taskflow/internal/services"
	"github.com/metaphorce/taskflow/internal/validation"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type userTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupUserTestEnv(t *testing.T) userTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterCustomValidators())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Task{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userService := services.NewUserService(repository.NewUserRepository(db), services.NewBcryptHasher())
	handler := NewUserHandler(userService)

	r := gin.New()
	users := r.Group("/taskflow/users")
	{
		users.POST("", handler.CreateUser)
		users.GET("", handler.ListUsers)
		users.GET("/:id", handler.GetUser)
		users.PUT("/:id", handler.UpdateUser)
		users.DELETE("/:id", handler.DeleteUser)
		users.GET("/email/:email", handler.GetUserByEmail)
		users.GET("/role/:role", handler.ListUsersByRole)
		users.GET("/name/:name", handler.GetUserByName)
	}

	return userTestEnv{db: db, router: r}
}

func (env userTestEnv) do(t *testing.T, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestUserHandler_CreateUser(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.do(t, http.MethodPost, "/taskflow/users", map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "supersecret",
		"role":     "LEAD",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.ID)
	require.Equal(t, "ana@example.com", response.Email)
	require.NotContains(t, w.Body.String(), "supersecret")
}

func TestUserHandler_CreateUser_DuplicateEmail(t *testing.T) {
	env := setupUserTestEnv(t)

	payload := map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "supersecret",
		"role":     "LEAD",
	}
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/taskflow/users", payload).Code)
	require.Equal(t, http.StatusConflict, env.do(t, http.MethodPost, "/taskflow/users", payload).Code)
}

func TestUserHandler_CreateUser_Invalid(t *testing.T) {
	env := setupUserTestEnv(t)

	// Blank name
	w := env.do(t, http.MethodPost, "/taskflow/users", map[string]string{
		"name":     "",
		"email":    "ana@example.com",
		"password": "supersecret",
		"role":     "LEAD",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Role outside the closed set
	w = env.do(t, http.MethodPost, "/taskflow/users", map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "supersecret",
		"role":     "INTERN",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.do(t, http.MethodGet, "/taskflow/users/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_UpdateUser(t *testing.T) {
	env := setupUserTestEnv(t)

	created := env.do(t, http.MethodPost, "/taskflow/users", map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "supersecret",
		"role":     "LEAD",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var user dto.UserDTO
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &user))

	w := env.do(t, http.MethodPut, "/taskflow/users/1", map[string]string{
		"name":          "Ana Maria",
		"email":         "ana@example.com",
		"password_hash": "hash",
		"role":          "MEMBER",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, user.ID, updated.ID)
	require.Equal(t, "Ana Maria", updated.Name)
	require.Equal(t, models.RoleMember, updated.Role)

	w = env.do(t, http.MethodPut, "/taskflow/users/99", map[string]string{"name": "Ghost"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	env := setupUserTestEnv(t)

	require.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/taskflow/users/99", nil).Code)

	created := env.do(t, http.MethodPost, "/taskflow/users", map[string]string{
		"name":     "Ana",
		"email":    "a@x.com",
		"password": "supersecret",
		"role":     "LEAD",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	require.Equal(t, http.StatusNoContent, env.do(t, http.MethodDelete, "/taskflow/users/1", nil).Code)
	require.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/taskflow/users/1", nil).Code)
}

func TestUserHandler_ListUsersByRole(t *testing.T) {
	env := setupUserTestEnv(t)

	for _, p := range []map[string]string{
		{"name": "Ana", "email": "ana@example.com", "password": "s3cr3ts3c", "role": "LEAD"},
		{"name": "Ben", "email": "ben@example.com", "password": "s3cr3ts3c", "role": "MEMBER"},
	} {
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/taskflow/users", p).Code)
	}

	w := env.do(t, http.MethodGet, "/taskflow/users/role/MEMBER", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var members []dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	require.Len(t, members, 1)

	require.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/taskflow/users/role/INTERN", nil).Code)
}

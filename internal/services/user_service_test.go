package services

import (
	"testing"

	"github.com/metaphorce/taskflow/internal/models"
	"github.com/metaphorce/taskflow/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewUserService(repository.NewUserRepository(db), NewBcryptHasher()), db
}

func TestUserService_CreateUser(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.CreateUser(&models.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "plaintext-secret",
		Role:         models.RoleLead,
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.NotEqual(t, "plaintext-secret", user.PasswordHash)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	svc, db := newUserService(t)

	_, err := svc.CreateUser(&models.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "secret",
		Role:         models.RoleLead,
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(&models.User{
		Name:         "Other",
		Email:        "ana@example.com",
		PasswordHash: "secret",
		Role:         models.RoleMember,
	})
	require.ErrorIs(t, err, ErrEmailTaken)

	// The failed create performed no write.
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserService_GetUserByEmail(t *testing.T) {
	svc, _ := newUserService(t)

	created, err := svc.CreateUser(&models.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "secret",
		Role:         models.RoleLead,
	})
	require.NoError(t, err)

	found, err := svc.GetUserByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetUserByEmail("missing@example.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_GetUserByName(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.CreateUser(&models.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "secret",
		Role:         models.RoleLead,
	})
	require.NoError(t, err)

	found, err := svc.GetUserByName("Ana")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", found.Email)

	_, err = svc.GetUserByName("Nobody")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_GetUsersByRole(t *testing.T) {
	svc, _ := newUserService(t)

	for _, u := range []models.User{
		{Name: "Ana", Email: "ana@example.com", PasswordHash: "s", Role: models.RoleLead},
		{Name: "Ben", Email: "ben@example.com", PasswordHash: "s", Role: models.RoleMember},
		{Name: "Cal", Email: "cal@example.com", PasswordHash: "s", Role: models.RoleMember},
	} {
		_, err := svc.CreateUser(&u)
		require.NoError(t, err)
	}

	members, err := svc.GetUsersByRole(models.RoleMember)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	leads, err := svc.GetUsersByRole(models.RoleLead)
	require.NoError(t, err)
	assert.Len(t, leads, 1)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	svc, db := newUserService(t)

	_, err := svc.UpdateUser(99, &models.User{Name: "Ghost"})
	require.ErrorIs(t, err, ErrUserNotFound)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUserService_UpdateUser_FullReplace(t *testing.T) {
	svc, db := newUserService(t)

	created, err := svc.CreateUser(&models.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "secret",
		Role:         models.RoleLead,
	})
	require.NoError(t, err)

	// The patch carries a bogus id and omits the role; the stored record is
	// replaced wholesale with the id forced.
	updated, err := svc.UpdateUser(created.ID, &models.User{
		ID:           999,
		Name:         "Ana Maria",
		Email:        "ana@example.com",
		PasswordHash: "stored-verbatim",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ana Maria", updated.Name)

	var stored models.User
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, "Ana Maria", stored.Name)
	assert.Equal(t, "stored-verbatim", stored.PasswordHash)
	assert.Empty(t, stored.Role, "omitted fields reset to their zero value")
}

func TestUserService_DeleteUser(t *testing.T) {
	svc, _ := newUserService(t)

	require.ErrorIs(t, svc.DeleteUser(42), ErrUserNotFound)

	created, err := svc.CreateUser(&models.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "secret",
		Role:         models.RoleLead,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(created.ID))

	_, err = svc.GetUser(created.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_DeleteUser_NoCascade(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(repository.NewUserRepository(db), NewBcryptHasher())
	taskSvc := NewTaskService(repository.NewTaskRepository(db))

	user, err := userSvc.CreateUser(&models.User{
		Name:         "Ana",
		Email:        "a@x.com",
		PasswordHash: "secret",
		Role:         models.RoleLead,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), user.ID)

	_, err = userSvc.CreateUser(&models.User{
		Name:         "Ana Again",
		Email:        "a@x.com",
		PasswordHash: "secret",
		Role:         models.RoleLead,
	})
	require.ErrorIs(t, err, ErrEmailTaken)

	task, err := taskSvc.CreateTask(&models.Task{
		Title:      "Write report",
		CreatorID:  user.ID,
		AssigneeID: user.ID,
		ProjectID:  1,
		Priority:   models.PriorityMedium,
		Status:     models.TaskStatusAssigned,
	})
	require.NoError(t, err)

	// Deleting the user succeeds even though the task still references it.
	require.NoError(t, userSvc.DeleteUser(user.ID))

	_, err = userSvc.GetUser(user.ID)
	require.ErrorIs(t, err, ErrUserNotFound)

	remaining, err := taskSvc.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, remaining.CreatorID, "the dangling reference is preserved")
}

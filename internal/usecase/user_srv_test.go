package usecase

import (
	"context"
	"testing"
	"time"

	"film-catalog/internal/dto/request"
	"film-catalog/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDefaultsNameToLogin(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.User.CreateUser(context.Background(), userRequest("dolores"))

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "dolores", user.Name)
	assert.Equal(t, "1990-05-17", user.Birthday)
	assert.Empty(t, user.Friends)
}

func TestCreateUserValidation(t *testing.T) {
	future := time.Now().AddDate(0, 0, 2).Format("2006-01-02")

	tests := []struct {
		name   string
		mutate func(r *request.UserRequest)
		field  string
	}{
		{"bad email", func(r *request.UserRequest) { r.Email = "not-an-email" }, "Email"},
		{"empty login", func(r *request.UserRequest) { r.Login = "" }, "Login"},
		{"login with spaces", func(r *request.UserRequest) { r.Login = "two words" }, "Login"},
		{"future birthday", func(r *request.UserRequest) { r.Birthday = future }, "Birthday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			req := userRequest("valid")
			tt.mutate(req)

			_, err := svc.User.CreateUser(context.Background(), req)

			require.ErrorIs(t, err, apperror.ErrValidation)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

			all, err := svc.User.GetAllUsers(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestUpdateUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	ids := mustCreateUsers(t, svc, 2)
	require.NoError(t, svc.Graph.AddFriend(ctx, ids[0], ids[1]))

	req := userRequest("renamed")
	req.ID = ids[0]
	req.Name = "Renamed User"
	updated, err := svc.User.UpdateUser(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "renamed", updated.Login)
	assert.Equal(t, "Renamed User", updated.Name)
	assert.Equal(t, []int64{ids[1]}, updated.Friends)
}

func TestUpdateUserUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	req := userRequest("ghost")
	req.ID = 999999
	_, err := svc.User.UpdateUser(context.Background(), req)

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetAllUsersOrderedByID(t *testing.T) {
	svc, _ := newTestService(t)
	ids := mustCreateUsers(t, svc, 3)

	users, err := svc.User.GetAllUsers(context.Background())
	require.NoError(t, err)

	require.Len(t, users, 3)
	for i, u := range users {
		assert.Equal(t, ids[i], u.ID)
	}
}

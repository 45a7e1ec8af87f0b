package usecase

import (
	"context"
	"fmt"
	"testing"

	"film-catalog/internal/data/repository"
	"film-catalog/internal/data/repository/memory"
	"film-catalog/internal/dto/request"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *repository.Repository) {
	t.Helper()
	repo := memory.NewRepository(zap.NewNop())
	return NewService(repo, zap.NewNop()), repo
}

func userRequest(login string) *request.UserRequest {
	return &request.UserRequest{
		Email:    login + "@example.com",
		Login:    login,
		Name:     "",
		Birthday: "1990-05-17",
	}
}

func filmRequest(name string, mpaID int, genreIDs ...int) *request.FilmRequest {
	genres := make([]request.GenreRef, 0, len(genreIDs))
	for _, id := range genreIDs {
		genres = append(genres, request.GenreRef{ID: id})
	}
	return &request.FilmRequest{
		Name:        name,
		Description: "A film called " + name,
		ReleaseDate: "2001-09-14",
		Duration:    120,
		Mpa:         &request.MpaRef{ID: mpaID},
		Genres:      genres,
	}
}

func mustCreateUsers(t *testing.T, svc *Service, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := range n {
		resp, err := svc.User.CreateUser(context.Background(), userRequest(fmt.Sprintf("user%d", i+1)))
		require.NoError(t, err)
		ids = append(ids, resp.ID)
	}
	return ids
}

func mustCreateFilms(t *testing.T, svc *Service, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := range n {
		resp, err := svc.Film.CreateFilm(context.Background(), filmRequest(fmt.Sprintf("Film %d", i+1), 1))
		require.NoError(t, err)
		ids = append(ids, resp.ID)
	}
	return ids
}

package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"film-catalog/internal/data/entity"
	"film-catalog/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()
	return NewRepository(zap.NewNop())
}

func createUser(t *testing.T, repo *repository.Repository, login string) *entity.User {
	t.Helper()
	user := &entity.User{
		Email:    login + "@example.com",
		Login:    login,
		Name:     login,
		Birthday: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.User.Create(context.Background(), user))
	return user
}

func createFilm(t *testing.T, repo *repository.Repository, name string) *entity.Film {
	t.Helper()
	film := &entity.Film{
		Name:        name,
		ReleaseDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		Duration:    100,
		MpaID:       1,
	}
	require.NoError(t, repo.Film.Create(context.Background(), film))
	return film
}

func TestUserCreateAssignsIncreasingIDs(t *testing.T) {
	repo := newTestRepo(t)

	first := createUser(t, repo, "first")
	second := createUser(t, repo, "second")

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	all, err := repo.User.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Login)
	assert.Equal(t, "second", all[1].Login)
}

func TestUserUpdateMissingReturnsNotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.User.Update(context.Background(), &entity.User{ID: 42, Login: "ghost"})

	assert.ErrorIs(t, err, repository.ErrNotFound)
	all, err := repo.User.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUserFindByIDMissingReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	user, err := repo.User.FindByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestFindByIDReturnsCopy(t *testing.T) {
	repo := newTestRepo(t)
	created := createUser(t, repo, "alice")

	found, err := repo.User.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	found.Login = "mallory"

	again, err := repo.User.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", again.Login)
}

func TestFindByIDsSkipsMissingAndSorts(t *testing.T) {
	repo := newTestRepo(t)
	for _, login := range []string{"a", "b", "c"} {
		createUser(t, repo, login)
	}

	users, err := repo.User.FindByIDs(context.Background(), []int64{3, 99, 1, 3})
	require.NoError(t, err)

	require.Len(t, users, 2)
	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, int64(3), users[1].ID)
}

func TestFilmCreateUnknownMpa(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Film.Create(context.Background(), &entity.Film{Name: "x", Duration: 1, MpaID: 99})

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSeededCatalog(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	genres, err := repo.Genre.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 6)
	assert.Equal(t, "Comedy", genres[0].Name)

	ratings, err := repo.Mpa.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, ratings, 5)
	assert.Equal(t, "NC-17", ratings[4].Name)
}

func TestReplaceGenres(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	film := createFilm(t, repo, "Heat")

	require.NoError(t, repo.FilmGenre.ReplaceGenres(ctx, film.ID, []int{4, 2}))
	genres, err := repo.Genre.FindByFilmID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, []entity.Genre{{ID: 2, Name: "Drama"}, {ID: 4, Name: "Thriller"}}, genres)

	require.NoError(t, repo.FilmGenre.ReplaceGenres(ctx, film.ID, nil))
	genres, err = repo.Genre.FindByFilmID(ctx, film.ID)
	require.NoError(t, err)
	assert.Empty(t, genres)

	err = repo.FilmGenre.ReplaceGenres(ctx, film.ID, []int{1, 77})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLikes(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	film := createFilm(t, repo, "Alien")
	u1 := createUser(t, repo, "u1")
	u2 := createUser(t, repo, "u2")

	require.NoError(t, repo.Like.Add(ctx, film.ID, u2.ID))
	require.NoError(t, repo.Like.Add(ctx, film.ID, u1.ID))
	assert.ErrorIs(t, repo.Like.Add(ctx, film.ID, u1.ID), repository.ErrDuplicate)
	assert.ErrorIs(t, repo.Like.Add(ctx, film.ID, 404), repository.ErrNotFound)

	ids, err := repo.Like.FindUserIDsByFilmID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{u1.ID, u2.ID}, ids)

	counts, err := repo.Like.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{film.ID: 2}, counts)

	require.NoError(t, repo.Like.Remove(ctx, film.ID, u1.ID))
	require.NoError(t, repo.Like.Remove(ctx, film.ID, u1.ID))
	ids, err = repo.Like.FindUserIDsByFilmID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{u2.ID}, ids)
}

func TestFriendships(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := createUser(t, repo, "a")
	b := createUser(t, repo, "b")

	require.NoError(t, repo.Friendship.Add(ctx, a.ID, b.ID, entity.FriendshipStatusPending))
	assert.ErrorIs(t, repo.Friendship.Add(ctx, a.ID, b.ID, entity.FriendshipStatusPending), repository.ErrDuplicate)

	ids, err := repo.Friendship.FindFriendIDs(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID}, ids)

	ids, err = repo.Friendship.FindFriendIDs(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	status, err := repo.Friendship.FindStatus(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.FriendshipStatusPending, status)

	require.NoError(t, repo.Friendship.UpdateStatus(ctx, a.ID, b.ID, entity.FriendshipStatusConfirmed))
	status, err = repo.Friendship.FindStatus(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.FriendshipStatusConfirmed, status)

	assert.ErrorIs(t, repo.Friendship.UpdateStatus(ctx, b.ID, a.ID, entity.FriendshipStatusConfirmed), repository.ErrNotFound)

	require.NoError(t, repo.Friendship.Remove(ctx, a.ID, b.ID))
	status, err = repo.Friendship.FindStatus(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Empty(t, status)
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		film := &entity.Film{Name: "Tmp", Duration: 10, MpaID: 1}
		require.NoError(t, repo.Film.Create(ctx, film))
		require.NoError(t, repo.FilmGenre.ReplaceGenres(ctx, film.ID, []int{1}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	films, err := repo.Film.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, films)

	// the counter is restored as well
	film := createFilm(t, repo, "Kept")
	assert.Equal(t, int64(1), film.ID)
}

func TestWithinTxCommits(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		return repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
			return repo.User.Create(ctx, &entity.User{Login: "nested"})
		})
	})
	require.NoError(t, err)

	users, err := repo.User.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

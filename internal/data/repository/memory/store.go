// Package memory is an in-process backend for the repository interfaces.
// It enforces the same key and reference rules as the postgres schema.
package memory

import (
	"context"
	"maps"
	"sync"

	"film-catalog/internal/data/entity"
	"film-catalog/internal/data/repository"

	"go.uber.org/zap"
)

type pair struct {
	a, b int64
}

// Store owns all tables and id counters. Zero value is not usable, use NewStore.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	log  *zap.Logger

	nextUserID int64
	nextFilmID int64

	users       map[int64]entity.User
	films       map[int64]entity.Film
	genres      map[int]entity.Genre
	mpa         map[int]entity.Mpa
	filmGenres  map[int64]map[int]struct{}
	likes       map[pair]entity.Like // key: film, user
	friendships map[pair]entity.Friendship
}

func NewStore(log *zap.Logger) *Store {
	s := &Store{
		log:         log.With(zap.String("repository", "memory")),
		users:       make(map[int64]entity.User),
		films:       make(map[int64]entity.Film),
		genres:      make(map[int]entity.Genre),
		mpa:         make(map[int]entity.Mpa),
		filmGenres:  make(map[int64]map[int]struct{}),
		likes:       make(map[pair]entity.Like),
		friendships: make(map[pair]entity.Friendship),
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	for _, g := range []entity.Genre{
		{ID: 1, Name: "Comedy"},
		{ID: 2, Name: "Drama"},
		{ID: 3, Name: "Cartoon"},
		{ID: 4, Name: "Thriller"},
		{ID: 5, Name: "Documentary"},
		{ID: 6, Name: "Action"},
	} {
		s.genres[g.ID] = g
	}

	for _, m := range []entity.Mpa{
		{ID: 1, Name: "G", Description: "General audiences, all ages admitted"},
		{ID: 2, Name: "PG", Description: "Parental guidance suggested"},
		{ID: 3, Name: "PG-13", Description: "Parents strongly cautioned, some material may be inappropriate for children under 13"},
		{ID: 4, Name: "R", Description: "Restricted, under 17 requires accompanying parent or adult guardian"},
		{ID: 5, Name: "NC-17", Description: "Adults only, no one 17 and under admitted"},
	} {
		s.mpa[m.ID] = m
	}
}

// NewRepository builds a repository set over a fresh seeded store.
func NewRepository(log *zap.Logger) *repository.Repository {
	return NewStore(log).Repository()
}

// Repository exposes the store through the repository interfaces.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		User:       &userRepository{s: s},
		Film:       &filmRepository{s: s},
		Genre:      &genreRepository{s: s},
		Mpa:        &mpaRepository{s: s},
		FilmGenre:  &filmGenreRepository{s: s},
		Like:       &likeRepository{s: s},
		Friendship: &friendshipRepository{s: s},
		Tx:         s,
	}
}

type snapshot struct {
	nextUserID  int64
	nextFilmID  int64
	users       map[int64]entity.User
	films       map[int64]entity.Film
	filmGenres  map[int64]map[int]struct{}
	likes       map[pair]entity.Like
	friendships map[pair]entity.Friendship
}

type txKey struct{}

// WithinTx serializes units of work and restores the tables when fn fails.
// A nested call joins the outer unit of work.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	defer func() {
		if p := recover(); p != nil {
			s.restore(snap)
			panic(p)
		}
		if err != nil {
			s.restore(snap)
			s.log.Debug("Unit of work rolled back", zap.Error(err))
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	genres := make(map[int64]map[int]struct{}, len(s.filmGenres))
	for filmID, set := range s.filmGenres {
		genres[filmID] = maps.Clone(set)
	}

	return snapshot{
		nextUserID:  s.nextUserID,
		nextFilmID:  s.nextFilmID,
		users:       maps.Clone(s.users),
		films:       maps.Clone(s.films),
		filmGenres:  genres,
		likes:       maps.Clone(s.likes),
		friendships: maps.Clone(s.friendships),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID = snap.nextUserID
	s.nextFilmID = snap.nextFilmID
	s.users = snap.users
	s.films = snap.films
	s.filmGenres = snap.filmGenres
	s.likes = snap.likes
	s.friendships = snap.friendships
}

package usecase

import (
	"context"
	"testing"

	"film-catalog/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookups(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	genres, err := svc.Catalog.GetGenres(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 6)
	assert.Equal(t, "Action", genres[5].Name)

	genre, err := svc.Catalog.GetGenre(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Thriller", genre.Name)

	ratings, err := svc.Catalog.GetMpaRatings(ctx)
	require.NoError(t, err)
	require.Len(t, ratings, 5)
	assert.Equal(t, "PG-13", ratings[2].Name)

	mpa, err := svc.Catalog.GetMpa(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "NC-17", mpa.Name)
}

func TestCatalogUnknownIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Catalog.GetGenre(ctx, 100)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.Catalog.GetMpa(ctx, 100)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

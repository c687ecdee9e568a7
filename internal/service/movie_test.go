package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiram/casting-agency/internal/transport"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestMovieService_CreateMovie_Success(t *testing.T) {
	t.Parallel()

	svc, _ := newServices(t)
	ctx := context.Background()

	movie, err := svc.CreateMovie(ctx, transport.CreateMovieRequest{Title: "Boss Level", ReleaseYear: 2020})
	require.NoError(t, err)
	require.NotNil(t, movie)

	assert.NotZero(t, movie.ID)
	assert.Equal(t, "Boss Level", movie.Title)
	assert.Equal(t, 2020, movie.ReleaseYear)
}

func TestMovieService_CreateMovie_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newServices(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateMovieRequest
	}{
		{name: "missing title", req: transport.CreateMovieRequest{ReleaseYear: 2020}},
		{name: "missing release year", req: transport.CreateMovieRequest{Title: "Boss Level"}},
		{name: "empty body", req: transport.CreateMovieRequest{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			movie, err := svc.CreateMovie(ctx, tt.req)
			require.Error(t, err)
			assert.Nil(t, movie)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestMovieService_ListMovies_EmptyTableIsNotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newServices(t)
	ctx := context.Background()

	movies, err := svc.ListMovies(ctx)
	require.Error(t, err)
	assert.Nil(t, movies)
	assert.ErrorIs(t, err, ErrNotFound)

	// Repeating the same failing call yields the same failure.
	_, err = svc.ListMovies(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMovieService_ListMovies_OrdersByID(t *testing.T) {
	t.Parallel()

	svc, _ := newServices(t)
	ctx := context.Background()

	for _, title := range []string{"Braveheart", "Boss Level", "Mad Max"} {
		_, err := svc.CreateMovie(ctx, transport.CreateMovieRequest{Title: title, ReleaseYear: 2020})
		require.NoError(t, err)
	}

	movies, err := svc.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 3)

	for i := 1; i < len(movies); i++ {
		assert.Less(t, movies[i-1].ID, movies[i].ID)
	}
}

func TestMovieService_PatchMovie_PartialMerge(t *testing.T) {
	t.Parallel()

	svc, _ := newServices(t)
	ctx := context.Background()

	created, err := svc.CreateMovie(ctx, transport.CreateMovieRequest{Title: "Boss Level", ReleaseYear: 2020})
	require.NoError(t, err)

	patched, err := svc.PatchMovie(ctx, transport.PatchMovieRequest{Title: strPtr("Braveheart")}, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, patched.ID)
	assert.Equal(t, "Braveheart", patched.Title)
	assert.Equal(t, 2020, patched.ReleaseYear)

	// Round-trip: the patched entity is what a subsequent read returns.
	movies, err := svc.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, *patched, movies[0])
}

func TestMovieService_PatchMovie_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newServices(t)

	patched, err := svc.PatchMovie(context.Background(), transport.PatchMovieRequest{Title: strPtr("Braveheart")}, 100)
	require.Error(t, err)
	assert.Nil(t, patched)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMovieService_DeleteMovie(t *testing.T) {
	t.Parallel()

	svc, _ := newServices(t)
	ctx := context.Background()

	created, err := svc.CreateMovie(ctx, transport.CreateMovieRequest{Title: "Boss Level", ReleaseYear: 2020})
	require.NoError(t, err)

	deleted, err := svc.DeleteMovie(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted)

	_, err = svc.DeleteMovie(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ListMovies(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

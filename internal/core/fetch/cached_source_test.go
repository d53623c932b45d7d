package fetch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource returns a fixed picture or error and counts calls
type stubSource struct {
	name  string
	pic   Picture
	err   error
	calls int
}

func (s *stubSource) FetchPicture(ctx context.Context) (Picture, error) {
	s.calls++
	return s.pic, s.err
}

func (s *stubSource) GetSourceName() string {
	return s.name
}

func TestCachedSource_OnlineSavesSuccess(t *testing.T) {
	cm, err := NewCacheManager(t.TempDir())
	require.NoError(t, err)

	stub := &stubSource{name: "apod", pic: StaticPicture()}
	source := NewCachedSource(stub, cm, false)
	assert.Equal(t, "apod-cached", source.GetSourceName())

	pic, err := source.FetchPicture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Pillars of Creation", pic.Title)
	assert.True(t, cm.HasCache())
}

func TestCachedSource_OnlineFailureNotMasked(t *testing.T) {
	cm, err := NewCacheManager(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, cm.SavePicture("apod", StaticPicture()))

	stub := &stubSource{name: "apod", err: ErrSourceUnavailable}
	source := NewCachedSource(stub, cm, false)

	_, err = source.FetchPicture(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Equal(t, 1, stub.calls)
}

func TestCachedSource_Offline(t *testing.T) {
	t.Run("serves_cache_without_calling_source", func(t *testing.T) {
		cm, err := NewCacheManager(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, cm.SavePicture("apod", StaticPicture()))

		stub := &stubSource{name: "apod", err: errors.New("should not be called")}
		source := NewCachedSource(stub, cm, true)
		assert.Equal(t, "apod-offline", source.GetSourceName())

		pic, err := source.FetchPicture(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Pillars of Creation", pic.Title)
		assert.NotEmpty(t, pic.Image.Data)
		assert.Equal(t, 0, stub.calls)
	})

	t.Run("falls_back_to_source_when_cache_empty", func(t *testing.T) {
		cm, err := NewCacheManager(t.TempDir())
		require.NoError(t, err)

		stub := &stubSource{name: "apod", pic: Picture{Title: "Fresh"}}
		source := NewCachedSource(stub, cm, true)

		pic, err := source.FetchPicture(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Fresh", pic.Title)
		assert.Equal(t, 1, stub.calls)
		assert.True(t, cm.HasCache())
	})
}

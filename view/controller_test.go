package view

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmdex/filmdex/swapi"
)

// stubFetcher runs an arbitrary function per load.
type stubFetcher struct {
	fn func(ctx context.Context) ([]swapi.Film, error)
}

func (s *stubFetcher) Films(ctx context.Context) ([]swapi.Film, error) {
	return s.fn(ctx)
}

func sampleFilms() []swapi.Film {
	return []swapi.Film{
		{ID: 4, Title: "A New Hope", OpeningText: "It is a period...", ReleaseDate: "1977-05-25"},
		{ID: 5, Title: "The Empire Strikes Back", ReleaseDate: "1980-05-17"},
	}
}

func TestReloadSuccess(t *testing.T) {
	fetcher := &stubFetcher{fn: func(ctx context.Context) ([]swapi.Film, error) {
		return sampleFilms(), nil
	}}
	ctrl := NewController(fetcher, zerolog.Nop())

	ctrl.Reload(context.Background())

	state := ctrl.Snapshot()
	require.Len(t, state.Films, 2)
	assert.Equal(t, "A New Hope", state.Films[0].Title)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Err)
}

func TestReloadFailureKeepsFilms(t *testing.T) {
	calls := 0
	fetcher := &stubFetcher{fn: func(ctx context.Context) ([]swapi.Film, error) {
		calls++
		if calls == 1 {
			return sampleFilms(), nil
		}
		return nil, errors.New("Something Went Wrong")
	}}
	ctrl := NewController(fetcher, zerolog.Nop())

	ctrl.Reload(context.Background())
	ctrl.Reload(context.Background())

	state := ctrl.Snapshot()
	assert.Equal(t, "Something Went Wrong", state.Err)
	assert.False(t, state.Loading)

	// Previously loaded films survive a failed reload.
	require.Len(t, state.Films, 2)
	assert.Equal(t, 4, state.Films[0].ID)
}

func TestReloadClearsPreviousError(t *testing.T) {
	calls := 0
	fetcher := &stubFetcher{fn: func(ctx context.Context) ([]swapi.Film, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("Something Went Wrong")
		}
		return sampleFilms(), nil
	}}
	ctrl := NewController(fetcher, zerolog.Nop())

	ctrl.Reload(context.Background())
	require.NotEmpty(t, ctrl.Snapshot().Err)

	ctrl.Reload(context.Background())
	state := ctrl.Snapshot()
	assert.Empty(t, state.Err)
	assert.Len(t, state.Films, 2)
}

func TestLoadingFlagCoversInFlightWindow(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	fetcher := &stubFetcher{fn: func(ctx context.Context) ([]swapi.Film, error) {
		close(started)
		<-release
		return sampleFilms(), nil
	}}
	ctrl := NewController(fetcher, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		ctrl.Reload(context.Background())
		close(done)
	}()

	<-started
	assert.True(t, ctrl.Snapshot().Loading)
	assert.Equal(t, ScreenLoading, ctrl.Snapshot().Screen())

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reload did not finish")
	}

	assert.False(t, ctrl.Snapshot().Loading)
}

func TestLoadingFlagClearedOnFailure(t *testing.T) {
	fetcher := &stubFetcher{fn: func(ctx context.Context) ([]swapi.Film, error) {
		return nil, errors.New("Something Went Wrong")
	}}
	ctrl := NewController(fetcher, zerolog.Nop())

	ctrl.Reload(context.Background())
	assert.False(t, ctrl.Snapshot().Loading)
}

func TestOverlappingReloadsLastWriteWins(t *testing.T) {
	var mu sync.Mutex
	gates := map[int]chan struct{}{
		1: make(chan struct{}),
		2: make(chan struct{}),
	}
	entered := make(chan struct{}, 2)
	calls := 0

	fetcher := &stubFetcher{fn: func(ctx context.Context) ([]swapi.Film, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		entered <- struct{}{}
		<-gates[n]
		return []swapi.Film{{ID: n, Title: "Result"}}, nil
	}}
	ctrl := NewController(fetcher, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctrl.Reload(context.Background())
		}()
	}

	// Wait until both fetches are in flight, then release the second
	// invocation first. The first one completes last and its result is
	// what sticks, regardless of invocation order.
	<-entered
	<-entered
	close(gates[2])
	time.Sleep(50 * time.Millisecond)
	close(gates[1])
	wg.Wait()

	state := ctrl.Snapshot()
	require.Len(t, state.Films, 1)
	assert.Equal(t, 1, state.Films[0].ID)
	assert.False(t, state.Loading)
}

func TestScreenPrecedence(t *testing.T) {
	films := sampleFilms()

	tests := []struct {
		name  string
		state State
		want  Screen
	}{
		{
			name:  "empty state shows placeholder",
			state: State{},
			want:  ScreenPlaceholder,
		},
		{
			name:  "films shown when idle",
			state: State{Films: films},
			want:  ScreenFilms,
		},
		{
			name:  "error shown when idle",
			state: State{Err: "Something Went Wrong"},
			want:  ScreenError,
		},
		{
			name:  "error wins over stale films",
			state: State{Films: films, Err: "Something Went Wrong"},
			want:  ScreenError,
		},
		{
			name:  "loading wins over films",
			state: State{Films: films, Loading: true},
			want:  ScreenLoading,
		},
		{
			name:  "loading wins over error",
			state: State{Err: "Something Went Wrong", Loading: true},
			want:  ScreenLoading,
		},
		{
			name:  "loading wins over everything",
			state: State{Films: films, Err: "Something Went Wrong", Loading: true},
			want:  ScreenLoading,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Screen())
		})
	}
}

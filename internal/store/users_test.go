package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adushkin/userdir/internal/logger"
	"github.com/adushkin/userdir/models"
)

func newTestDirectory() UserDirectory {
	return NewUserDirectory(logger.Nop())
}

func TestInsertThenGet_ReturnsSameRecord(t *testing.T) {
	d := newTestDirectory()
	ctx := context.Background()

	user := models.User{UserName: "David", UserAge: 28}
	require.NoError(t, d.Insert(ctx, user))

	got, err := d.Get(ctx, "David")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestGet_IsCaseInsensitive(t *testing.T) {
	d := newTestDirectory()
	ctx := context.Background()

	require.NoError(t, d.Insert(ctx, models.User{UserName: "Alice", UserAge: 25}))

	for _, name := range []string{"alice", "ALICE", "aLiCe"} {
		got, err := d.Get(ctx, name)
		require.NoError(t, err, name)
		assert.Equal(t, "Alice", got.UserName)
	}
}

func TestInsert_DuplicateCaseInsensitiveName(t *testing.T) {
	d := newTestDirectory()
	ctx := context.Background()

	require.NoError(t, d.Insert(ctx, models.User{UserName: "Alice", UserAge: 25}))

	err := d.Insert(ctx, models.User{UserName: "ALICE", UserAge: 99})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Equal(t, 1, d.Len())

	// the stored record must be untouched by the failed insert
	got, err := d.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 25, got.UserAge)
}

func TestReplace_AbsentKey_LeavesStoreUnmodified(t *testing.T) {
	d := newTestDirectory()
	ctx := context.Background()

	require.NoError(t, d.Insert(ctx, models.User{UserName: "Alice", UserAge: 25}))

	err := d.Replace(ctx, "Ghost", models.User{UserName: "Ghost", UserAge: 40})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 1, d.Len())
}

func TestReplace_RenameDoesNotReKey(t *testing.T) {
	d := newTestDirectory()
	ctx := context.Background()

	require.NoError(t, d.Insert(ctx, models.User{UserName: "Alice", UserAge: 25}))
	require.NoError(t, d.Replace(ctx, "Alice", models.User{UserName: "AliceUpdated", UserAge: 26}))

	// reads follow the record's current name
	got, err := d.Get(ctx, "AliceUpdated")
	require.NoError(t, err)
	assert.Equal(t, "AliceUpdated", got.UserName)
	assert.Equal(t, 26, got.UserAge)

	_, err = d.Get(ctx, "Alice")
	assert.ErrorIs(t, err, ErrUserNotFound)

	// writes still address the original key: a new "Alice" is a conflict
	// and the renamed record stays reachable for Replace under "Alice"
	assert.ErrorIs(t, d.Insert(ctx, models.User{UserName: "Alice", UserAge: 30}), ErrUserAlreadyExists)
	require.NoError(t, d.Replace(ctx, "Alice", models.User{UserName: "AliceUpdated", UserAge: 27}))

	got, err = d.Get(ctx, "AliceUpdated")
	require.NoError(t, err)
	assert.Equal(t, 27, got.UserAge)
}

func TestRemove_SecondRemoveFails(t *testing.T) {
	d := newTestDirectory()
	ctx := context.Background()

	require.NoError(t, d.Insert(ctx, models.User{UserName: "Bob", UserAge: 30}))

	require.NoError(t, d.Remove(ctx, "bob"))
	assert.Equal(t, 0, d.Len())

	err := d.Remove(ctx, "Bob")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestList_ReturnsSnapshot(t *testing.T) {
	d := newTestDirectory()
	ctx := context.Background()

	require.NoError(t, d.Insert(ctx, models.User{UserName: "Alice", UserAge: 25}))
	require.NoError(t, d.Insert(ctx, models.User{UserName: "Bob", UserAge: 30}))

	users := d.List(ctx)
	assert.Len(t, users, 2)

	// mutating the snapshot must not affect the directory
	users[0].UserAge = 99
	fresh := d.List(ctx)
	for _, u := range fresh {
		assert.NotEqual(t, 99, u.UserAge)
	}
}

func TestSeed_InstallsStarterRecords(t *testing.T) {
	d := newTestDirectory()
	ctx := context.Background()

	d.Seed(ctx)

	assert.Equal(t, 3, d.Len())

	alice, err := d.Get(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, 25, alice.UserAge)

	bob, err := d.Get(ctx, "Bob")
	require.NoError(t, err)
	assert.Equal(t, 30, bob.UserAge)

	charlie, err := d.Get(ctx, "Charlie")
	require.NoError(t, err)
	assert.Equal(t, 35, charlie.UserAge)
}

func TestInsert_ConcurrentSameName_ExactlyOneSucceeds(t *testing.T) {
	d := newTestDirectory()
	ctx := context.Background()

	const workers = 64

	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- d.Insert(ctx, models.User{UserName: "David", UserAge: 28})
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, conflicted int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrUserAlreadyExists):
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicted)
	assert.Equal(t, 1, d.Len())
}

func TestDirectory_ConcurrentMixedOperations(t *testing.T) {
	d := newTestDirectory()
	ctx := context.Background()
	d.Seed(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = d.List(ctx)
			_, _ = d.Get(ctx, "Alice")
			_ = d.Replace(ctx, "Bob", models.User{UserName: "Bob", UserAge: 31})
			_ = d.Len()
		}()
	}
	wg.Wait()

	bob, err := d.Get(ctx, "Bob")
	require.NoError(t, err)
	assert.Equal(t, 31, bob.UserAge)
}

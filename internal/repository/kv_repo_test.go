package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/ozpath/internal/domain"
	"github.com/alexanderramin/ozpath/internal/kv"
	"github.com/alexanderramin/ozpath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeCapture struct {
	keys []string
}

func (c *decodeCapture) OnDecodeError(key string, _ error) { c.keys = append(c.keys, key) }

func TestUserRepo_AddAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewKVUserRepo(kv.NewMemoryStore(), nil)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	alice := testutil.NewTestUser("Alice", "alice@example.com")
	bob := testutil.NewTestUser("Bob", "bob@example.com")
	require.NoError(t, repo.Add(ctx, alice))
	require.NoError(t, repo.Add(ctx, bob))

	users, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice@example.com", users[0].Email)

	got, err := repo.FindByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, got.ID)
	assert.Equal(t, bob.PasswordHash, got.PasswordHash)
}

func TestUserRepo_FindByEmail_IsExact(t *testing.T) {
	ctx := context.Background()
	repo := NewKVUserRepo(kv.NewMemoryStore(), nil)
	require.NoError(t, repo.Add(ctx, testutil.NewTestUser("Alice", "alice@example.com")))

	_, err := repo.FindByEmail(ctx, "Alice@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_MalformedJSONTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyUsers, "{not json"))
	obs := &decodeCapture{}
	repo := NewKVUserRepo(store, obs)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, []string{KeyUsers}, obs.keys)

	require.NoError(t, repo.Add(ctx, testutil.NewTestUser("Alice", "alice@example.com")))
	users, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepo_ReadsLegacyRecordShape(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyUsers, `[{"name":"Old","email":"old@example.com"}]`))

	got, err := NewKVUserRepo(store, nil).FindByEmail(ctx, "old@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Old", got.Name)
	assert.Empty(t, got.PasswordHash)
}

func TestSessionRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewKVSessionRepo(store, nil)

	_, err := repo.Current(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	u := testutil.NewTestUser("Alice", "alice@example.com")
	require.NoError(t, repo.Set(ctx, u))

	got, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Empty(t, got.PasswordHash, "session must not carry the password hash")

	raw, _, _ := store.Get(ctx, KeyCurrentUser)
	assert.NotContains(t, raw, u.PasswordHash)

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Current(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_TrailingDataTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()

	for name, raw := range map[string]string{
		"garbage after array": `[{"email":"x@y.z"}]garbage`,
		"second value":        `[{"email":"x@y.z"}] []`,
		"truncated":           `[{"email":"x@y.z"}`,
	} {
		t.Run(name, func(t *testing.T) {
			store := kv.NewMemoryStore()
			require.NoError(t, store.Set(ctx, KeyUsers, raw))
			obs := &decodeCapture{}

			users, err := NewKVUserRepo(store, obs).List(ctx)
			require.NoError(t, err)
			assert.Empty(t, users)
			assert.Equal(t, []string{KeyUsers}, obs.keys)
		})
	}
}

func TestUserRepo_TrailingWhitespaceAccepted(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyUsers, "[{\"email\":\"x@y.z\"}]\n  "))

	users, err := NewKVUserRepo(store, nil).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "x@y.z", users[0].Email)
}

func TestSessionRepo_MalformedSessionIsLoggedOut(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyCurrentUser, "garbage"))

	_, err := NewKVSessionRepo(store, nil).Current(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActionItemRepo_PerUserKeys(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewKVActionItemRepo(store, nil)

	_, err := repo.ListByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	items := []domain.ActionItem{{ID: "1", Title: "Research visa options", Category: domain.CategoryPreparation, Timeframe: domain.TimeframeImmediate}}
	require.NoError(t, repo.SaveForEmail(ctx, "alice@example.com", items))

	got, err := repo.ListByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, items, got)

	_, ok, _ := store.Get(ctx, "actionItems_alice@example.com")
	assert.True(t, ok)

	_, err = repo.ListByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepos_OverSQLiteStore(t *testing.T) {
	ctx := context.Background()
	store := kv.NewSQLiteStore(testutil.NewTestDB(t))
	users := NewKVUserRepo(store, nil)

	u := testutil.NewTestUser("Alice", "alice@example.com", testutil.WithCreatedAt(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)))
	require.NoError(t, users.Add(ctx, u))

	got, err := users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, u.CreatedAt.Equal(got.CreatedAt))
}

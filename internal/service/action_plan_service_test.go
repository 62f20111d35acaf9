package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ozpath/internal/domain"
	"github.com/alexanderramin/ozpath/internal/kv"
	"github.com/alexanderramin/ozpath/internal/repository"
	"github.com/alexanderramin/ozpath/internal/testutil"
)

const aliceEmail = "alice@example.com"

func TestActionPlan_SeedsDefaultsOnFirstList(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := NewActionPlanService(store, nil)

	items, err := svc.List(ctx, aliceEmail, "")
	require.NoError(t, err)
	require.Len(t, items, 12)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "Research visa options", items[0].Title)
	assert.Equal(t, "12", items[11].ID)
	for _, it := range items {
		assert.False(t, it.Completed)
	}

	_, ok, err := store.Get(ctx, repository.ActionItemsKey(aliceEmail))
	require.NoError(t, err)
	assert.True(t, ok, "defaults are persisted on first access")
}

func TestActionPlan_CategoryFilter(t *testing.T) {
	svc := NewActionPlanService(kv.NewMemoryStore(), nil)

	items, err := svc.List(context.Background(), aliceEmail, domain.CategoryDocumentation)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, it := range items {
		assert.Equal(t, domain.CategoryDocumentation, it.Category)
	}

	settlement, err := svc.List(context.Background(), aliceEmail, domain.CategorySettlement)
	require.NoError(t, err)
	assert.Len(t, settlement, 4)

	_, err = svc.List(context.Background(), aliceEmail, "travel")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestActionPlan_TogglePersists(t *testing.T) {
	ctx := context.Background()
	_, tx := testutil.NewTestSQLiteStore(t)
	svc := NewActionPlanService(tx, nil)

	it, err := svc.Toggle(ctx, aliceEmail, "3")
	require.NoError(t, err)
	assert.True(t, it.Completed)
	assert.Equal(t, "Skills assessment", it.Title)

	items, err := svc.List(ctx, aliceEmail, "")
	require.NoError(t, err)
	assert.True(t, items[2].Completed)
	assert.Equal(t, 8, Progress(items))

	it, err = svc.Toggle(ctx, aliceEmail, "3")
	require.NoError(t, err)
	assert.False(t, it.Completed)
}

func TestActionPlan_ToggleUnknownID(t *testing.T) {
	svc := NewActionPlanService(kv.NewMemoryStore(), nil)

	_, err := svc.Toggle(context.Background(), aliceEmail, "99")
	assert.ErrorIs(t, err, ErrActionItemNotFound)
}

func TestActionPlan_PerUserIsolation(t *testing.T) {
	ctx := context.Background()
	svc := NewActionPlanService(kv.NewMemoryStore(), nil)

	_, err := svc.Toggle(ctx, aliceEmail, "1")
	require.NoError(t, err)

	bob, err := svc.List(ctx, "bob@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, 0, Progress(bob))
}

func TestActionPlan_RequiresEmail(t *testing.T) {
	svc := NewActionPlanService(kv.NewMemoryStore(), nil)

	_, err := svc.List(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = svc.Toggle(context.Background(), "", "1")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestActionPlan_MalformedChecklistIsReseeded(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, repository.ActionItemsKey(aliceEmail), "[{"))
	var bad []string
	svc := NewActionPlanService(store, repository.DecodeObserverFunc(func(key string, _ error) { bad = append(bad, key) }))

	items, err := svc.List(ctx, aliceEmail, "")
	require.NoError(t, err)
	assert.Len(t, items, 12)
	assert.Equal(t, []string{"actionItems_alice@example.com"}, bad)
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0, Progress(nil))

	items := DefaultActionItems()
	assert.Equal(t, 0, Progress(items))
	items[0].Completed = true
	assert.Equal(t, 8, Progress(items))
	items[1].Completed = true
	assert.Equal(t, 17, Progress(items))
	for i := range items {
		items[i].Completed = true
	}
	assert.Equal(t, 100, Progress(items))
}

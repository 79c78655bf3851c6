package helper

import (
	"testing"

	"studio_manager/constants"
	"studio_manager/model"
	"studio_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductDraftBuild(t *testing.T) {
	draft := NewProductDraft("Standard", "8 classes a month", 49.90, 30)

	require.NoError(t, draft.AddQuotaPool(model.QuotaPoolDraftInput{
		Key: "group", Name: "Group classes", TotalQuota: 8,
	}))
	require.NoError(t, draft.AddItem(model.ProductItemDraftInput{
		ItemId: 1, QuotaType: constants.QUOTA_SHARED, PoolKey: "group",
	}))
	require.NoError(t, draft.AddItem(model.ProductItemDraftInput{
		ItemId: 2, QuotaType: constants.QUOTA_INDIVIDUAL, QuotaValue: utils.Ptr(4),
	}))
	require.NoError(t, draft.AddItem(model.ProductItemDraftInput{
		ItemId: 3, QuotaType: constants.QUOTA_FREE,
	}))

	product, poolIndexes, err := draft.Build()
	require.NoError(t, err)

	assert.Equal(t, "Standard", product.Name)
	assert.True(t, product.IsActive)
	require.Len(t, product.QuotaPools, 1)
	require.Len(t, product.Items, 3)

	// SHARED items reference their pool by position; the rest carry -1.
	assert.Equal(t, []int{0, -1, -1}, poolIndexes)
}

func TestProductDraftDuplicatePoolKey(t *testing.T) {
	draft := NewProductDraft("Standard", "", 0, 30)
	require.NoError(t, draft.AddQuotaPool(model.QuotaPoolDraftInput{Key: "a", Name: "A", TotalQuota: 5}))

	err := draft.AddQuotaPool(model.QuotaPoolDraftInput{Key: "a", Name: "B", TotalQuota: 3})
	assert.Error(t, err)
}

func TestProductDraftItemValidation(t *testing.T) {
	draft := NewProductDraft("Standard", "", 0, 30)

	// INDIVIDUAL without a value.
	assert.Error(t, draft.AddItem(model.ProductItemDraftInput{
		ItemId: 1, QuotaType: constants.QUOTA_INDIVIDUAL,
	}))

	// SHARED pointing at an unknown pool.
	assert.Error(t, draft.AddItem(model.ProductItemDraftInput{
		ItemId: 1, QuotaType: constants.QUOTA_SHARED, PoolKey: "missing",
	}))

	// Unknown quota type.
	assert.Error(t, draft.AddItem(model.ProductItemDraftInput{
		ItemId: 1, QuotaType: "UNLIMITED",
	}))

	// Same item twice.
	require.NoError(t, draft.AddItem(model.ProductItemDraftInput{ItemId: 1, QuotaType: constants.QUOTA_FREE}))
	assert.Error(t, draft.AddItem(model.ProductItemDraftInput{ItemId: 1, QuotaType: constants.QUOTA_FREE}))
}

func TestProductDraftBuildRequiresItems(t *testing.T) {
	draft := NewProductDraft("Empty", "", 0, 30)
	_, _, err := draft.Build()
	assert.Error(t, err)
}

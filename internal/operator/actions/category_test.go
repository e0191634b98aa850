package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/storage/category"
	"github.com/hoaikthai/fin-api/internal/storage/storagetest"
)

func (f *fixture) createCategory(t *testing.T, name string, categoryType category.Type, parentID *uuid.UUID) *category.Category {
	t.Helper()
	action := &CreateCategory{
		Name:     name,
		Type:     categoryType,
		ParentID: parentID,
		UserID:   f.userID,
	}
	require.NoError(t, f.op.Process(context.Background(), action))
	return action.Result
}

func TestCreateCategory_Success(t *testing.T) {
	f := newFixture(t)

	created := f.createCategory(t, "Side projects", category.TypeIncome, nil)

	assert.Equal(t, "Side projects", created.Name)
	assert.Equal(t, category.TypeIncome, created.Type)
	assert.False(t, created.IsDefault)
	require.NotNil(t, created.UserID)
	assert.Equal(t, f.userID, *created.UserID)
}

func TestCreateCategory_InvalidType(t *testing.T) {
	f := newFixture(t)

	action := &CreateCategory{Name: "Whatever", Type: "savings", UserID: f.userID}
	err := f.op.Process(context.Background(), action)

	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.EqualError(t, err, `invalid category type "savings"`)
}

func TestCreateCategory_ParentTypeMismatch(t *testing.T) {
	f := newFixture(t)

	action := &CreateCategory{
		Name:     "Bonus",
		Type:     category.TypeIncome,
		ParentID: &f.food.ID,
		UserID:   f.userID,
	}
	err := f.op.Process(context.Background(), action)

	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.EqualError(t, err, "category type must match the parent category type")
}

func TestCreateCategory_NestingLimitedToOneLevel(t *testing.T) {
	f := newFixture(t)
	child := f.createCategory(t, "Takeout", category.TypeExpense, &f.food.ID)

	action := &CreateCategory{
		Name:     "Pizza",
		Type:     category.TypeExpense,
		ParentID: &child.ID,
		UserID:   f.userID,
	}
	err := f.op.Process(context.Background(), action)

	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.EqualError(t, err, "parent category is itself a child; nesting is limited to one level")
}

func TestCreateCategory_ForeignParentForbidden(t *testing.T) {
	f := newFixture(t)

	theirs, err := f.db.Categories().Insert(context.Background(), &category.CategoryCreate{
		Name:   "Their category",
		Type:   category.TypeExpense,
		UserID: &f.otherID,
	})
	require.NoError(t, err)

	action := &CreateCategory{
		Name:     "Mine",
		Type:     category.TypeExpense,
		ParentID: &theirs.ID,
		UserID:   f.userID,
	}
	assert.ErrorIs(t, f.op.Process(context.Background(), action), apperr.ErrForbidden)
}

// -- UpdateCategory tests --

func TestUpdateCategory_Rename(t *testing.T) {
	f := newFixture(t)
	cat := f.createCategory(t, "Side projects", category.TypeIncome, nil)

	name := "Freelancing"
	action := &UpdateCategory{
		ID:     cat.ID,
		UserID: f.userID,
		Patch:  CategoryPatch{Name: &name},
	}
	require.NoError(t, f.op.Process(context.Background(), action))

	assert.Equal(t, "Freelancing", action.Result.Name)
}

func TestUpdateCategory_DefaultImmutable(t *testing.T) {
	f := newFixture(t)

	name := "Renamed"
	action := &UpdateCategory{
		ID:     f.salary.ID,
		UserID: f.userID,
		Patch:  CategoryPatch{Name: &name},
	}
	err := f.op.Process(context.Background(), action)

	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.EqualError(t, err, "default categories cannot be modified")
}

func TestUpdateCategory_ClearParent(t *testing.T) {
	f := newFixture(t)
	child := f.createCategory(t, "Takeout", category.TypeExpense, &f.food.ID)

	action := &UpdateCategory{
		ID:     child.ID,
		UserID: f.userID,
		Patch:  CategoryPatch{ClearParent: true},
	}
	require.NoError(t, f.op.Process(context.Background(), action))

	assert.Nil(t, action.Result.ParentID)
}

func TestUpdateCategory_MergedParentRevalidated(t *testing.T) {
	f := newFixture(t)
	child := f.createCategory(t, "Takeout", category.TypeExpense, &f.food.ID)

	// Changing only the type leaves the expense parent attached, which must
	// fail the type match.
	income := category.TypeIncome
	action := &UpdateCategory{
		ID:     child.ID,
		UserID: f.userID,
		Patch:  CategoryPatch{Type: &income},
	}
	assert.ErrorIs(t, f.op.Process(context.Background(), action), apperr.ErrInvalidInput)
}

// -- RemoveCategory tests --

func TestRemoveCategory_Success(t *testing.T) {
	f := newFixture(t)
	cat := f.createCategory(t, "Side projects", category.TypeIncome, nil)

	require.NoError(t, f.op.Process(context.Background(), &RemoveCategory{ID: cat.ID, UserID: f.userID}))

	found, err := f.db.Categories().FindByID(context.Background(), cat.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRemoveCategory_DefaultUndeletable(t *testing.T) {
	f := newFixture(t)

	err := f.op.Process(context.Background(), &RemoveCategory{ID: f.salary.ID, UserID: f.userID})

	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.EqualError(t, err, "default categories cannot be deleted")
}

func TestRemoveCategory_BlockedByChildren(t *testing.T) {
	f := newFixture(t)
	parent := f.createCategory(t, "Hobbies", category.TypeExpense, nil)
	f.createCategory(t, "Climbing", category.TypeExpense, &parent.ID)

	err := f.op.Process(context.Background(), &RemoveCategory{ID: parent.ID, UserID: f.userID})

	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.EqualError(t, err, "category has child categories and cannot be deleted")
}

func TestRemoveCategory_BlockedByTransactions(t *testing.T) {
	f := newFixture(t)
	cat := f.createCategory(t, "Hobbies", category.TypeExpense, nil)

	create := &CreateTransaction{
		Input:  f.createInput("-20.00", cat.ID, category.TypeExpense),
		UserID: f.userID,
	}
	require.NoError(t, f.op.Process(context.Background(), create))

	err := f.op.Process(context.Background(), &RemoveCategory{ID: cat.ID, UserID: f.userID})

	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.EqualError(t, err, "category has transactions and cannot be deleted")
}

// -- SeedDefaultCategories tests --

func TestSeedDefaultCategories_PopulatesTree(t *testing.T) {
	db := storagetest.NewDB()
	op := storagetest.NewOperator(db)
	ctx := context.Background()

	action := &SeedDefaultCategories{}
	require.NoError(t, op.Process(ctx, action))

	assert.Equal(t, 51, action.Seeded)

	count, err := db.Categories().CountDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(51), count)

	outgoing, err := db.Categories().FindDefaultByName(ctx, category.OutgoingTransferName, category.TypeExpense)
	require.NoError(t, err)
	require.NotNil(t, outgoing)
	incoming, err := db.Categories().FindDefaultByName(ctx, category.IncomingTransferName, category.TypeIncome)
	require.NoError(t, err)
	require.NotNil(t, incoming)
}

func TestSeedDefaultCategories_Idempotent(t *testing.T) {
	db := storagetest.NewDB()
	op := storagetest.NewOperator(db)
	ctx := context.Background()

	require.NoError(t, op.Process(ctx, &SeedDefaultCategories{}))

	again := &SeedDefaultCategories{}
	require.NoError(t, op.Process(ctx, again))

	assert.Equal(t, 0, again.Seeded)
	count, err := db.Categories().CountDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(51), count)
}

func TestSeedDefaultCategories_ChildrenInheritParentType(t *testing.T) {
	db := storagetest.NewDB()
	op := storagetest.NewOperator(db)
	ctx := context.Background()

	require.NoError(t, op.Process(ctx, &SeedDefaultCategories{}))

	userID := uuid.Must(uuid.NewV4())
	all, err := db.Categories().ListVisibleTo(ctx, userID)
	require.NoError(t, err)

	byID := make(map[uuid.UUID]*category.Category, len(all))
	for _, cat := range all {
		byID[cat.ID] = cat
	}
	for _, cat := range all {
		if cat.ParentID == nil {
			continue
		}
		parent, ok := byID[*cat.ParentID]
		require.True(t, ok, "child %s points at a missing parent", cat.Name)
		assert.Equal(t, parent.Type, cat.Type)
	}
}

package gorm

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/askahmah/v1/internal/domain/inventory"
	"github.com/askahmah/v1/internal/domain/recipe"
	"github.com/askahmah/v1/test/testutils"
)

// RepositoriesTestSuite exercises the GORM repositories against an in-memory
// SQLite database
type RepositoriesTestSuite struct {
	suite.Suite
	db       *gormlib.DB
	items    *testutils.InventoryFactory
	messages *testutils.MessageFactory
}

func (suite *RepositoriesTestSuite) SetupTest() {
	db, err := gormlib.Open(sqlite.Open(":memory:"), &gormlib.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), db.AutoMigrate(
		&InventoryItemModel{},
		&MessageModel{},
		&RecipeModel{},
	))
	suite.db = db
	suite.items = testutils.NewInventoryFactory(1)
	suite.messages = testutils.NewMessageFactory(1)
}

func (suite *RepositoriesTestSuite) newItem(userID, name string, itemType inventory.ItemType) *inventory.Item {
	item, err := inventory.NewItem(userID, name, itemType, 1, "piece")
	require.NoError(suite.T(), err)
	return item
}

func (suite *RepositoriesTestSuite) TestInventoryRepository() {
	ctx := context.Background()
	repo := NewInventoryRepository(suite.db)

	suite.Run("CreateAndFindByName_CaseInsensitive", func() {
		item := suite.newItem("user-1", "Chicken breast", inventory.ItemTypeIngredient)
		require.NoError(suite.T(), repo.Create(ctx, item))

		found, err := repo.FindByName(ctx, "user-1", inventory.ItemTypeIngredient, "CHICKEN BREAST")
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), found)
		assert.Equal(suite.T(), item.ID, found.ID)
		assert.Equal(suite.T(), "Chicken breast", found.Name)
	})

	suite.Run("FindByName_AbsentReturnsNilNil", func() {
		found, err := repo.FindByName(ctx, "user-1", inventory.ItemTypeIngredient, "Durian")
		assert.NoError(suite.T(), err)
		assert.Nil(suite.T(), found)
	})

	suite.Run("FindByName_ScopedByType", func() {
		found, err := repo.FindByName(ctx, "user-1", inventory.ItemTypeKitchenware, "Chicken breast")
		assert.NoError(suite.T(), err)
		assert.Nil(suite.T(), found, "same name under the other type must not match")
	})

	suite.Run("FindByName_ScopedByUser", func() {
		found, err := repo.FindByName(ctx, "user-2", inventory.ItemTypeIngredient, "Chicken breast")
		assert.NoError(suite.T(), err)
		assert.Nil(suite.T(), found)
	})

	suite.Run("Update_OverwritesRow", func() {
		found, err := repo.FindByName(ctx, "user-1", inventory.ItemTypeIngredient, "chicken breast")
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), found)

		found.Quantity = 4
		found.Unit = "pieces"
		found.LastUpdated = time.Now().UTC()
		require.NoError(suite.T(), repo.Update(ctx, found))

		again, err := repo.FindByName(ctx, "user-1", inventory.ItemTypeIngredient, "chicken breast")
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 4.0, again.Quantity)
		assert.Equal(suite.T(), "pieces", again.Unit)
	})

	suite.Run("DeleteByName_SpansBothTypes", func() {
		require.NoError(suite.T(), repo.Create(ctx, suite.newItem("user-1", "Steamer", inventory.ItemTypeKitchenware)))
		require.NoError(suite.T(), repo.Create(ctx, suite.newItem("user-1", "Steamer", inventory.ItemTypeIngredient)))

		require.NoError(suite.T(), repo.DeleteByName(ctx, "user-1", "STEAMER"))

		items, err := repo.FindByUser(ctx, "user-1")
		require.NoError(suite.T(), err)
		for _, item := range items {
			assert.NotEqual(suite.T(), "Steamer", item.Name)
		}
	})

	suite.Run("DeleteByName_AbsentIsNoOp", func() {
		assert.NoError(suite.T(), repo.DeleteByName(ctx, "user-1", "Unicorn"))
	})

	suite.Run("FindByUser_ReturnsAllTypes", func() {
		require.NoError(suite.T(), repo.Create(ctx, suite.items.Ingredient("user-3")))
		require.NoError(suite.T(), repo.Create(ctx, suite.items.Kitchenware("user-3")))

		items, err := repo.FindByUser(ctx, "user-3")
		require.NoError(suite.T(), err)
		assert.Len(suite.T(), items, 2)
	})
}

func (suite *RepositoriesTestSuite) TestMessageRepository() {
	ctx := context.Background()
	repo := NewMessageRepository(suite.db)

	suite.Run("CreateAndList_AscendingByCreation", func() {
		seeded := suite.messages.History("user-1", 3)
		// Insert out of creation order to prove retrieval sorts
		for _, i := range []int{2, 0, 1} {
			message := seeded[i]
			require.NoError(suite.T(), repo.Create(ctx, &message))
		}

		messages, err := repo.FindByUser(ctx, "user-1")
		require.NoError(suite.T(), err)
		require.Len(suite.T(), messages, 3)
		assert.Equal(suite.T(), seeded[0].Content, messages[0].Content)
		assert.Equal(suite.T(), seeded[2].Content, messages[2].Content)
	})

	suite.Run("FindByUser_ScopedByUser", func() {
		messages, err := repo.FindByUser(ctx, "someone-else")
		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), messages)
	})
}

func (suite *RepositoriesTestSuite) TestRecipeRepository() {
	ctx := context.Background()
	repo := NewRecipeRepository(suite.db)

	suite.Run("CreateAndList_NewestFirst", func() {
		first, err := recipe.NewRecipe("user-1", "Chicken rice", "Boil chicken. Cook rice in the stock.", []string{"hainanese"}, "")
		require.NoError(suite.T(), err)
		first.CreatedAt = time.Now().Add(-time.Hour).UTC()
		require.NoError(suite.T(), repo.Create(ctx, first))

		second, err := recipe.NewRecipe("user-1", "Laksa", "Make the rempah. Simmer with coconut milk.", nil, "msg-42")
		require.NoError(suite.T(), err)
		require.NoError(suite.T(), repo.Create(ctx, second))

		recipes, err := repo.FindByUser(ctx, "user-1")
		require.NoError(suite.T(), err)
		require.Len(suite.T(), recipes, 2)
		assert.Equal(suite.T(), "Laksa", recipes[0].Name)
		assert.Equal(suite.T(), []string{"hainanese"}, recipes[1].Tags)
		assert.Equal(suite.T(), "msg-42", recipes[0].MessageID)
	})

	suite.Run("Delete_RemovesRow", func() {
		recipes, err := repo.FindByUser(ctx, "user-1")
		require.NoError(suite.T(), err)
		require.NotEmpty(suite.T(), recipes)

		require.NoError(suite.T(), repo.Delete(ctx, recipes[0].ID))

		after, err := repo.FindByUser(ctx, "user-1")
		require.NoError(suite.T(), err)
		assert.Len(suite.T(), after, len(recipes)-1)
	})

	suite.Run("Delete_AbsentReturnsError", func() {
		assert.Error(suite.T(), repo.Delete(ctx, uuid.New()))
	})
}

func TestRepositoriesTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoriesTestSuite))
}

package inventory

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ItemTestSuite provides a test suite for the inventory item entity
type ItemTestSuite struct {
	suite.Suite
}

func (suite *ItemTestSuite) TestCanonicalName() {
	suite.Run("LowercaseInput_ShouldCapitalizeFirstRune", func() {
		assert.Equal(suite.T(), "Chicken", CanonicalName("chicken"))
	})

	suite.Run("UppercaseInput_ShouldLowerTheRest", func() {
		assert.Equal(suite.T(), "Chicken", CanonicalName("CHICKEN"))
	})

	suite.Run("MixedCase_ShouldNormalize", func() {
		assert.Equal(suite.T(), "Soy sauce", CanonicalName("sOY sAUCE"))
	})

	suite.Run("EmptyString_ShouldStayEmpty", func() {
		assert.Equal(suite.T(), "", CanonicalName(""))
	})

	suite.Run("MultiByteFirstRune_ShouldUppercaseWholeRune", func() {
		assert.Equal(suite.T(), "Éclair", CanonicalName("éclair"))
	})

	suite.Run("Idempotent_ApplyingTwiceChangesNothing", func() {
		inputs := []string{"chicken", "CHICKEN", "Soy Sauce", "wok", "éclair", "A"}
		for _, in := range inputs {
			once := CanonicalName(in)
			assert.Equal(suite.T(), once, CanonicalName(once), "input %q", in)
		}
	})
}

func (suite *ItemTestSuite) TestNewItem() {
	suite.Run("ValidItem_ShouldApplyCanonicalName", func() {
		item, err := NewItem("user-1", "chicken BREAST", ItemTypeIngredient, 2, "pieces")

		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), item)
		assert.Equal(suite.T(), "Chicken breast", item.Name)
		assert.Equal(suite.T(), ItemTypeIngredient, item.Type)
		assert.Equal(suite.T(), 2.0, item.Quantity)
		assert.Equal(suite.T(), "pieces", item.Unit)
		assert.NotZero(suite.T(), item.DateAdded)
		assert.NotZero(suite.T(), item.LastUpdated)
	})

	suite.Run("ZeroQuantity_ShouldDefaultToOne", func() {
		item, err := NewItem("user-1", "wok", ItemTypeKitchenware, 0, "")

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), float64(DefaultQuantity), item.Quantity)
		assert.Equal(suite.T(), DefaultUnit, item.Unit)
	})

	suite.Run("EmptyName_ShouldReturnError", func() {
		item, err := NewItem("user-1", "", ItemTypeIngredient, 1, "piece")

		assert.Nil(suite.T(), item)
		assert.ErrorIs(suite.T(), err, ErrEmptyName)
	})

	suite.Run("NameOver100Runes_ShouldReturnError", func() {
		item, err := NewItem("user-1", strings.Repeat("a", 101), ItemTypeIngredient, 1, "piece")

		assert.Nil(suite.T(), item)
		assert.ErrorIs(suite.T(), err, ErrNameTooLong)
	})

	suite.Run("InvalidType_ShouldReturnError", func() {
		item, err := NewItem("user-1", "chicken", ItemType("pantry"), 1, "piece")

		assert.Nil(suite.T(), item)
		assert.ErrorIs(suite.T(), err, ErrInvalidType)
	})

	suite.Run("NegativeQuantity_ShouldReturnError", func() {
		item, err := NewItem("user-1", "chicken", ItemTypeIngredient, -2, "piece")

		assert.Nil(suite.T(), item)
		assert.ErrorIs(suite.T(), err, ErrNegativeQuantity)
	})
}

func (suite *ItemTestSuite) TestMergeFrom() {
	suite.Run("Merge_ShouldOverwriteNotAccumulate", func() {
		existing, err := NewItem("user-1", "chicken", ItemTypeIngredient, 2, "pieces")
		require.NoError(suite.T(), err)
		originalDateAdded := existing.DateAdded

		time.Sleep(time.Millisecond)
		replacement, err := NewItem("user-1", "CHICKEN", ItemTypeIngredient, 5, "grams")
		require.NoError(suite.T(), err)

		existing.MergeFrom(replacement)

		assert.Equal(suite.T(), 5.0, existing.Quantity, "quantity is last-write-wins, not summed")
		assert.Equal(suite.T(), "grams", existing.Unit)
		assert.Equal(suite.T(), "Chicken", existing.Name)
		assert.Equal(suite.T(), originalDateAdded, existing.DateAdded, "dateAdded survives merges")
		assert.True(suite.T(), existing.LastUpdated.After(originalDateAdded) || existing.LastUpdated.Equal(replacement.LastUpdated))
	})
}

func (suite *ItemTestSuite) TestSameName() {
	suite.Run("CaseInsensitiveMatch", func() {
		item, err := NewItem("user-1", "Soy sauce", ItemTypeIngredient, 1, "bottle")
		require.NoError(suite.T(), err)

		assert.True(suite.T(), item.SameName("SOY SAUCE"))
		assert.True(suite.T(), item.SameName("soy sauce"))
		assert.False(suite.T(), item.SameName("Fish sauce"))
	})
}

func TestItemTestSuite(t *testing.T) {
	suite.Run(t, new(ItemTestSuite))
}

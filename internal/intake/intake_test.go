package intake

import (
	"testing"

	"bookshop/internal/isbn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCondition(t *testing.T) {
	t.Run("accepts the three known tags", func(t *testing.T) {
		for _, s := range []string{"new", "as_new", "damaged"} {
			c, err := ParseCondition(s)
			require.NoError(t, err)
			assert.Equal(t, Condition(s), c)
		}
	})

	t.Run("rejects everything else", func(t *testing.T) {
		for _, s := range []string{"used", "NEW", "as-new", "", "mint"} {
			_, err := ParseCondition(s)
			assert.Error(t, err, s)
		}
	})
}

func TestCondition_Multiplier(t *testing.T) {
	assert.Equal(t, 1.0, ConditionNew.Multiplier())
	assert.Equal(t, 0.8, ConditionAsNew.Multiplier())
	assert.Equal(t, 0.5, ConditionDamaged.Multiplier())
}

func TestDecide(t *testing.T) {
	id, err := isbn.Parse("9780140328721")
	require.NoError(t, err)

	t.Run("both absent", func(t *testing.T) {
		entry := Decide(id, ConditionNew, Absent[float64](), Absent[string]())
		assert.Equal(t, StatusNeedsReview, entry.Status)
		assert.Equal(t, ReasonMissingTitleAndPrice, entry.Reason)
		assert.Nil(t, entry.Price)
		assert.Empty(t, entry.Title)
	})

	t.Run("price only", func(t *testing.T) {
		entry := Decide(id, ConditionNew, Found(100.0), Absent[string]())
		assert.Equal(t, StatusNeedsReview, entry.Status)
		assert.Equal(t, ReasonMissingTitle, entry.Reason)
		require.NotNil(t, entry.Price)
		assert.Equal(t, 100.0, *entry.Price)
		assert.Empty(t, entry.Title)
	})

	t.Run("title only", func(t *testing.T) {
		entry := Decide(id, ConditionNew, Absent[float64](), Found("Example Title"))
		assert.Equal(t, StatusNeedsReview, entry.Status)
		assert.Equal(t, ReasonNoPrice, entry.Reason)
		assert.Nil(t, entry.Price)
		assert.Equal(t, "Example Title", entry.Title)
	})

	t.Run("both present", func(t *testing.T) {
		entry := Decide(id, ConditionNew, Found(100.0), Found("Example Title"))
		assert.Equal(t, StatusComplete, entry.Status)
		assert.Empty(t, entry.Reason)
		require.NotNil(t, entry.Price)
		assert.Equal(t, 100.0, *entry.Price)
		assert.Equal(t, "Example Title", entry.Title)
	})

	t.Run("canonical forms and condition are always set", func(t *testing.T) {
		entry := Decide(id, ConditionDamaged, Absent[float64](), Absent[string]())
		assert.Equal(t, "0140328726", entry.ISBN10)
		assert.Equal(t, "9780140328721", entry.ISBN13)
		assert.Equal(t, ConditionDamaged, entry.Condition)
	})
}

func TestDecide_MultiplierAppliedOnce(t *testing.T) {
	id, err := isbn.Parse("9780140328721")
	require.NoError(t, err)

	// 100 at as_new (x0.8) is 80 whether or not the title showed up.
	withTitle := Decide(id, ConditionAsNew, Found(100.0), Found("Example Title"))
	require.NotNil(t, withTitle.Price)
	assert.Equal(t, 80.0, *withTitle.Price)

	withoutTitle := Decide(id, ConditionAsNew, Found(100.0), Absent[string]())
	require.NotNil(t, withoutTitle.Price)
	assert.Equal(t, 80.0, *withoutTitle.Price)
}

package model

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

var testElements = Elements{
	{Number: 1, Symbol: "H", Name: "Hydrogen", Category: CategoryNonmetal, Group: lo.ToPtr(1), Period: 1},
	{Number: 2, Symbol: "He", Name: "Helium", Category: CategoryNobleGas, Group: lo.ToPtr(18), Period: 1},
	{Number: 11, Symbol: "Na", Name: "Sodium", Category: CategoryAlkaliMetal, Group: lo.ToPtr(1), Period: 3},
}

func TestElementsGetBySymbol(t *testing.T) {
	for _, symbol := range []string{"na", "NA", "Na", "nA"} {
		element := testElements.GetBySymbol(symbol)
		if assert.NotNil(t, element, symbol) {
			assert.Equal(t, 11, element.Number)
		}
	}
	assert.Nil(t, testElements.GetBySymbol("Xx"))
	assert.Nil(t, testElements.GetBySymbol(""))
}

func TestElementsGetByNumber(t *testing.T) {
	assert.Equal(t, "He", testElements.GetByNumber(2).Symbol)
	assert.Nil(t, testElements.GetByNumber(99))
}

func TestElementsFilter(t *testing.T) {
	assert.Len(t, testElements.FilterByPeriod(1), 2)
	assert.Len(t, testElements.FilterByCategory(CategoryAlkaliMetal), 1)
	assert.Empty(t, testElements.FilterByCategory(CategoryActinide))
}

func TestCompoundDisplayName(t *testing.T) {
	c := Compound{CID: 2244}
	assert.Equal(t, "Compound #2244", c.DisplayName())
	assert.True(t, c.Degraded())

	c.IUPACName = lo.ToPtr("2-acetyloxybenzoic acid")
	assert.Equal(t, "2-acetyloxybenzoic acid", c.DisplayName())
	assert.False(t, c.Degraded())
}

func TestCompoundsCIDs(t *testing.T) {
	cs := Compounds{{CID: 3}, {CID: 1}, {CID: 2}}
	assert.Equal(t, []int64{3, 1, 2}, cs.CIDs())
	assert.Equal(t, []int64{}, Compounds{}.CIDs())
}

func TestReactions(t *testing.T) {
	reactions := Reactions{
		{ID: "1", Name: "Water Formation", Description: "Hydrogen gas reacts with oxygen gas to form water", Type: ReactionTypeSynthesis},
		{ID: "2", Name: "Salt Formation", Description: "Sodium metal reacts with chlorine gas to form table salt", Type: ReactionTypeSynthesis},
		{ID: "3", Name: "Electrolysis of Water", Description: "Water splits into hydrogen and oxygen", Type: ReactionTypeDecomposition},
	}

	assert.Equal(t, "Salt Formation", reactions.GetByID("2").Name)
	assert.Nil(t, reactions.GetByID("404"))

	assert.Len(t, reactions.FilterByType(ReactionTypeSynthesis), 2)
	assert.Empty(t, reactions.FilterByType(ReactionTypeDoubleReplacement))

	assert.Equal(t, []string{"1", "3"}, lo.Map(reactions.Search("WATER"), func(r Reaction, _ int) string { return r.ID }))
	assert.Equal(t, []string{"2"}, lo.Map(reactions.Search("chlorine"), func(r Reaction, _ int) string { return r.ID }))
	assert.Len(t, reactions.Search("  "), 3)
	assert.Empty(t, reactions.Search("nitrogen"))
}

package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog([]Definition{
		{Name: "bread", Description: "A fresh loaf.", Use: EffectEat, Heal: 20, Consumable: true, Price: 5},
		{Name: "torch", Description: "A flaming torch.", Use: EffectLight, Price: 10},
		{Name: "stick", Description: "A sturdy stick."},
	})
	require.NoError(t, err)
	return c
}

func TestCatalog_Create(t *testing.T) {
	c := testCatalog(t)

	bread := c.Create("Bread")
	assert.Equal(t, "bread", bread.Name)
	assert.Equal(t, "A fresh loaf.", bread.Description)
	assert.Equal(t, EffectEat, bread.Effect)

	unknown := c.Create("widget")
	assert.Equal(t, "widget", unknown.Name)
	assert.Equal(t, UnknownDescription, unknown.Description)
	assert.Equal(t, EffectNone, unknown.Effect)
}

func TestCatalog_Rebind(t *testing.T) {
	c := testCatalog(t)

	it := c.Rebind("torch", "A torch, slightly charred.")
	assert.Equal(t, "A torch, slightly charred.", it.Description)
	assert.Equal(t, EffectLight, it.Effect, "use tag comes from the catalog")

	it = c.Rebind("torch", "")
	assert.Equal(t, "A flaming torch.", it.Description)
}

func TestCatalog_ShopItems(t *testing.T) {
	c := testCatalog(t)

	shop := c.ShopItems()
	require.Len(t, shop, 2)
	assert.Equal(t, "bread", shop[0].Name)
	assert.Equal(t, "torch", shop[1].Name)
}

func TestNewCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name string
		defs []Definition
	}{
		{name: "empty name", defs: []Definition{{Name: " "}}},
		{name: "duplicate", defs: []Definition{{Name: "rope"}, {Name: "Rope"}}},
		{name: "bad risk", defs: []Definition{{Name: "berries", Use: EffectRiskyFood, RiskPercent: 120}}},
		{name: "negative price", defs: []Definition{{Name: "rope", Price: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.defs)
			assert.Error(t, err)
		})
	}
}

func TestItem_DescribeAndMatch(t *testing.T) {
	it := Item{Name: "Gemstone"}
	assert.Equal(t, "A Gemstone. Nothing special about it.", it.Describe())
	assert.True(t, it.Is("gemstone"))
	assert.True(t, it.Is(" GEMSTONE "))
	assert.False(t, it.Is("gem"))

	items := []Item{{Name: "rope"}, {Name: "torch"}, {Name: "rope"}}
	assert.Equal(t, 1, Index(items, "TORCH"))
	assert.Equal(t, 0, Index(items, "rope"))
	assert.Equal(t, -1, Index(items, "map"))
	assert.Equal(t, []string{"rope", "torch", "rope"}, Names(items))
}

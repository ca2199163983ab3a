package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventiq/ventiq-terminal/pkg/catalog"
	"github.com/ventiq/ventiq-terminal/pkg/models"
)

func newTestList() *TutorialListModel {
	m := NewTutorialListModel(catalog.Builtin())
	m.SetSize(100, 40)
	return m
}

func TestListStartsOnSellerTutorials(t *testing.T) {
	m := newTestList()

	assert.Equal(t, models.CategorySeller, m.Category())
	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "venta", selected.Key)

	view := m.View()
	assert.Contains(t, view, "VentIQ Seller (5)")
	assert.Contains(t, view, "VentIQ Admin (7)")
	assert.Contains(t, view, "Cómo realizar una venta")
	assert.NotContains(t, view, "Gestionar almacenes")
}

func TestListCategorySwitching(t *testing.T) {
	m := newTestList()

	m.Update(keyMsg("down"))
	m.Update(keyMsg("tab"))
	assert.Equal(t, models.CategoryAdmin, m.Category())
	selected, _ := m.Selected()
	assert.Equal(t, "registro-empresa", selected.Key, "each category keeps its own cursor")
	assert.Contains(t, m.View(), "Gestionar almacenes")

	m.Update(keyMsg("shift+tab"))
	assert.Equal(t, models.CategorySeller, m.Category())
	selected, _ = m.Selected()
	assert.Equal(t, "inventario", selected.Key)

	// tab wraps around
	m.Update(keyMsg("tab"))
	m.Update(keyMsg("tab"))
	assert.Equal(t, models.CategorySeller, m.Category())
}

func TestListCursorBounds(t *testing.T) {
	m := newTestList()

	m.Update(keyMsg("up"))
	selected, _ := m.Selected()
	assert.Equal(t, "venta", selected.Key)

	for i := 0; i < 10; i++ {
		m.Update(keyMsg("j"))
	}
	selected, _ = m.Selected()
	assert.Equal(t, "egresos", selected.Key)
}

func TestListEnterOpensSelected(t *testing.T) {
	m := newTestList()
	m.Update(keyMsg("tab"))
	m.Update(keyMsg("down"))

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)

	sw, ok := cmd().(SwitchViewMsg)
	require.True(t, ok)
	assert.Equal(t, walkthroughView, sw.view)
	assert.Equal(t, "configuracion-categorias", sw.key)
}

func TestListSelectKey(t *testing.T) {
	m := newTestList()

	m.SelectKey("transferencias")
	assert.Equal(t, models.CategoryAdmin, m.Category())
	selected, _ := m.Selected()
	assert.Equal(t, "transferencias", selected.Key)

	m.SelectKey("unknown")
	selected, _ = m.Selected()
	assert.Equal(t, "transferencias", selected.Key)
}

func TestListEmptyCategory(t *testing.T) {
	c, err := models.NewCatalog([]*models.Tutorial{
		{Key: "solo", Title: "Solo admin", Steps: []models.Step{{Title: "a"}}},
	})
	require.NoError(t, err)
	m := NewTutorialListModel(c)
	m.SetSize(100, 40)

	_, ok := m.Selected()
	assert.False(t, ok)
	_, cmd := m.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.True(t, strings.Contains(m.View(), "No tutorials in this category"))
}

package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/pos"
)

// ──────────────────────────────────────────────────────────────────────────────
// Ley del piso BOM: para un compuesto con componentes [(A,2), (B,1)] y
// existencias A=10, B=3, las unidades realizables son min(floor(10/2),
// floor(3/1)) = min(5,3) = 3. El componente limitante manda.
// ──────────────────────────────────────────────────────────────────────────────

func compuesto(components ...entity.Component) *entity.Product {
	return &entity.Product{ID: "p1", Name: "Compuesto", Components: components}
}

func item(id string, qty float64) *entity.InventoryItem {
	return &entity.InventoryItem{ID: id, QuantityOnHand: decimal.NewFromFloat(qty)}
}

func TestAvailableUnits_PisoMinimoEntreComponentes(t *testing.T) {
	p := compuesto(
		entity.Component{InventoryItemID: "A", QuantityPerUnit: decimal.NewFromInt(2)},
		entity.Component{InventoryItemID: "B", QuantityPerUnit: decimal.NewFromInt(1)},
	)
	items := map[string]*entity.InventoryItem{
		"A": item("A", 10),
		"B": item("B", 3),
	}

	assert.Equal(t, int64(3), pos.AvailableUnits(p, items),
		"el componente limitante (B) define las unidades realizables")
}

func TestAvailableUnits_StockDirectoSinReceta(t *testing.T) {
	p := &entity.Product{ID: "p2", DirectStock: 7}
	assert.Equal(t, int64(7), pos.AvailableUnits(p, nil),
		"sin componentes la cota es DirectStock")
}

func TestAvailableUnits_ItemFaltanteDejaNoDisponible(t *testing.T) {
	p := compuesto(
		entity.Component{InventoryItemID: "A", QuantityPerUnit: decimal.NewFromInt(1)},
		entity.Component{InventoryItemID: "no-existe", QuantityPerUnit: decimal.NewFromInt(1)},
	)
	items := map[string]*entity.InventoryItem{"A": item("A", 100)}

	assert.Equal(t, int64(0), pos.AvailableUnits(p, items),
		"un ítem de inventario inexistente aporta 0 al mínimo")
}

func TestAvailableUnits_ConsumoFraccionario(t *testing.T) {
	// 20 unidades de papel a 2.5 por unidad vendida => floor(8) = 8
	p := compuesto(entity.Component{InventoryItemID: "papel", QuantityPerUnit: decimal.NewFromFloat(2.5)})
	items := map[string]*entity.InventoryItem{"papel": item("papel", 20)}

	assert.Equal(t, int64(8), pos.AvailableUnits(p, items))
}

func TestAvailableUnits_ExistenciaNegativaCuentaComoCero(t *testing.T) {
	p := compuesto(entity.Component{InventoryItemID: "A", QuantityPerUnit: decimal.NewFromInt(1)})
	items := map[string]*entity.InventoryItem{"A": item("A", -4)}

	assert.Equal(t, int64(0), pos.AvailableUnits(p, items),
		"la sobreventa previa no produce disponibilidad negativa en el catálogo")
}

// TestAvailableUnits_LecturaIdempotente valida que dos lecturas consecutivas
// sin mutación intermedia devuelven lo mismo (la función es pura).
func TestAvailableUnits_LecturaIdempotente(t *testing.T) {
	p := compuesto(entity.Component{InventoryItemID: "A", QuantityPerUnit: decimal.NewFromInt(2)})
	items := map[string]*entity.InventoryItem{"A": item("A", 9)}

	first := pos.AvailableUnits(p, items)
	second := pos.AvailableUnits(p, items)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(4), first)
}

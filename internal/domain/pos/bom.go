// Package pos contiene los servicios puros del punto de venta: resolución de
// receta (BOM), totales del carrito, derivación de divisa y filtro por
// sucursal. Ninguna función de este paquete tiene efectos secundarios; toda
// mutación es (estado, comando) -> estado nuevo.
package pos

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// AvailableUnits calcula cuántas unidades vendibles del producto son
// realizables con el inventario dado.
//
// Producto de stock directo: la cota es DirectStock. Producto compuesto: por
// cada componente se calcula floor(existencia / consumoPorUnidad) y se toma
// el mínimo (el componente limitante). Un componente cuyo ítem de inventario
// no existe aporta 0, es decir, el producto queda no disponible.
//
// Solo lectura e idempotente: el catálogo la reevalúa en cada render.
func AvailableUnits(product *entity.Product, itemsByID map[string]*entity.InventoryItem) int64 {
	if !product.IsComposite() {
		return product.DirectStock
	}
	var minUnits int64
	for i, c := range product.Components {
		units := componentUnits(c, itemsByID)
		if i == 0 || units < minUnits {
			minUnits = units
		}
	}
	return minUnits
}

// componentUnits unidades realizables según un solo componente de la receta.
func componentUnits(c entity.Component, itemsByID map[string]*entity.InventoryItem) int64 {
	if !c.QuantityPerUnit.GreaterThan(decimal.Zero) {
		return 0
	}
	item, ok := itemsByID[c.InventoryItemID]
	if !ok || item == nil {
		return 0
	}
	if item.QuantityOnHand.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return item.QuantityOnHand.Div(c.QuantityPerUnit).Floor().IntPart()
}

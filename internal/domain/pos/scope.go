package pos

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// Filtro transversal por sucursal: con alcance "ALL" la colección se devuelve
// sin tocar; con un ID de sucursal se conservan los registros de esa sucursal
// y los registros globales (BranchID vacío), que son visibles desde cualquier
// vista. Se aplica uniformemente a inventario y transacciones antes de
// exponerlos a cualquier consumidor, incluido el propio motor de liquidación.

// FilterByScope filtra una colección según el BranchID que reporta cada elemento.
func FilterByScope[T any](items []T, scope string, branchID func(T) string) []T {
	if scope == entity.ScopeAll {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		b := branchID(it)
		if b == "" || b == scope {
			out = append(out, it)
		}
	}
	return out
}

// ScopeInventory filtra ítems de inventario por sucursal.
func ScopeInventory(items []*entity.InventoryItem, scope string) []*entity.InventoryItem {
	return FilterByScope(items, scope, func(i *entity.InventoryItem) string { return i.BranchID })
}

// ScopeTransactions filtra transacciones por sucursal.
func ScopeTransactions(txs []*entity.Transaction, scope string) []*entity.Transaction {
	return FilterByScope(txs, scope, func(t *entity.Transaction) string { return t.BranchID })
}

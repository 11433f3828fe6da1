package pos

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// Agregador de carrito: transformaciones puras sobre el valor Cart.
// El carrito nunca guarda totales; Subtotal, LineDiscountTotal y GrandTotal
// se recalculan en cada lectura.

// AddLine agrega una unidad del producto. Si ya existe una línea para el
// producto incrementa su cantidad; si no, crea la línea con el precio de
// lista y descuento cero.
func AddLine(cart entity.Cart, product *entity.Product) entity.Cart {
	out := cloneCart(cart)
	for i := range out.Lines {
		if out.Lines[i].ProductID == product.ID {
			out.Lines[i].Quantity++
			return out
		}
	}
	out.Lines = append(out.Lines, entity.CartLine{
		ProductID:       product.ID,
		Name:            product.Name,
		Quantity:        1,
		UnitPrice:       product.UnitPrice,
		PerUnitDiscount: decimal.Zero,
	})
	return out
}

// SetLineQuantity suma delta a la cantidad de la línea, acotada en >= 0.
// Una línea que llega a 0 se elimina del carrito.
func SetLineQuantity(cart entity.Cart, productID string, delta int64) entity.Cart {
	out := cloneCart(cart)
	for i := range out.Lines {
		if out.Lines[i].ProductID != productID {
			continue
		}
		q := out.Lines[i].Quantity + delta
		if q <= 0 {
			out.Lines = append(out.Lines[:i], out.Lines[i+1:]...)
			return out
		}
		out.Lines[i].Quantity = q
		return out
	}
	return out
}

// SetLinePrice sobreescribe el precio unitario de la línea, acotado en >= 0.
func SetLinePrice(cart entity.Cart, productID string, value decimal.Decimal) entity.Cart {
	out := cloneCart(cart)
	for i := range out.Lines {
		if out.Lines[i].ProductID == productID {
			out.Lines[i].UnitPrice = clampZero(value)
		}
	}
	return out
}

// SetLineDiscount fija el descuento por unidad de la línea, acotado en >= 0.
// No se acota contra el precio: un descuento mayor al precio se permite y lo
// absorbe el piso max(0, ...) a nivel de orden (comportamiento heredado).
func SetLineDiscount(cart entity.Cart, productID string, value decimal.Decimal) entity.Cart {
	out := cloneCart(cart)
	for i := range out.Lines {
		if out.Lines[i].ProductID == productID {
			out.Lines[i].PerUnitDiscount = clampZero(value)
		}
	}
	return out
}

// SetOrderDiscount fija el descuento global de la orden, acotado en >= 0.
func SetOrderDiscount(cart entity.Cart, value decimal.Decimal) entity.Cart {
	out := cloneCart(cart)
	out.OrderDiscount = clampZero(value)
	return out
}

// Clear vacía las líneas y resetea el descuento de orden. El caller debe
// confirmar la intención destructiva antes de llamar.
func Clear(cart entity.Cart) entity.Cart {
	out := cart
	out.Lines = nil
	out.OrderDiscount = decimal.Zero
	return out
}

// Subtotal = Σ(precioUnitario * cantidad).
func Subtotal(cart entity.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, l := range cart.Lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)))
	}
	return total
}

// LineDiscountTotal = Σ(descuentoPorUnidad * cantidad).
func LineDiscountTotal(cart entity.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, l := range cart.Lines {
		total = total.Add(l.PerUnitDiscount.Mul(decimal.NewFromInt(l.Quantity)))
	}
	return total
}

// GrandTotal = max(0, subtotal - descuentosDeLínea - descuentoDeOrden).
func GrandTotal(cart entity.Cart) decimal.Decimal {
	total := Subtotal(cart).Sub(LineDiscountTotal(cart)).Sub(cart.OrderDiscount)
	return clampZero(total)
}

func clampZero(v decimal.Decimal) decimal.Decimal {
	if v.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return v
}

// cloneCart copia el carrito con su slice de líneas para que las
// transformaciones no muten el valor de entrada.
func cloneCart(cart entity.Cart) entity.Cart {
	out := cart
	out.Lines = make([]entity.CartLine, len(cart.Lines))
	copy(out.Lines, cart.Lines)
	return out
}

package checkout_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/application/cart"
	"github.com/jhoicas/PuntoVenta-api/internal/application/checkout"
	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
	"github.com/jhoicas/PuntoVenta-api/internal/infrastructure/memory"
	"github.com/jhoicas/PuntoVenta-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateDirectStock(id string, stock int64) error {
	if p, ok := r.products[id]; ok {
		p.DirectStock = stock
	}
	return nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }

type fakeItemRepo struct {
	items map[string]*entity.InventoryItem
}

func (r *fakeItemRepo) Create(i *entity.InventoryItem) error { r.items[i.ID] = i; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	return r.items[id], nil
}
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.items[id], nil
}
func (r *fakeItemRepo) AdjustQuantity(id string, delta decimal.Decimal) error {
	if i, ok := r.items[id]; ok {
		i.QuantityOnHand = i.QuantityOnHand.Add(delta)
	}
	return nil
}
func (r *fakeItemRepo) Update(i *entity.InventoryItem) error { r.items[i.ID] = i; return nil }
func (r *fakeItemRepo) Delete(id string) error               { delete(r.items, id); return nil }
func (r *fakeItemRepo) List() ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, i := range r.items {
		out = append(out, i)
	}
	return out, nil
}
func (r *fakeItemRepo) GetByIDs(ids []string) (map[string]*entity.InventoryItem, error) {
	out := map[string]*entity.InventoryItem{}
	for _, id := range ids {
		if i, ok := r.items[id]; ok {
			out[id] = i
		}
	}
	return out, nil
}

type fakeTxRepo struct {
	created []*entity.Transaction
}

func (r *fakeTxRepo) Create(t *entity.Transaction) error { r.created = append(r.created, t); return nil }
func (r *fakeTxRepo) GetByID(id string) (*entity.Transaction, error) {
	for _, t := range r.created {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (r *fakeTxRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	return r.created, nil
}
func (r *fakeTxRepo) Delete(id string) error { return nil }

type fakeAccountRepo struct {
	accounts map[string]*entity.FinancialAccount
}

func (r *fakeAccountRepo) Create(a *entity.FinancialAccount) error { r.accounts[a.ID] = a; return nil }
func (r *fakeAccountRepo) GetByID(id string) (*entity.FinancialAccount, error) {
	return r.accounts[id], nil
}
func (r *fakeAccountRepo) List() ([]*entity.FinancialAccount, error) { return nil, nil }

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { r.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}
func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }

// fakeTxRunner ejecuta fn directamente contra los fakes. Si fn falla, deshace
// los efectos restaurando copias previas, imitando el rollback real.
type fakeTxRunner struct {
	txRepo      *fakeTxRepo
	itemRepo    *fakeItemRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) RunSettlement(_ context.Context, fn func(
	txRepo repository.TransactionRepository,
	itemRepo repository.InventoryItemRepository,
	productRepo repository.ProductRepository,
) error) error {
	txBefore := len(r.txRepo.created)
	itemsBefore := map[string]entity.InventoryItem{}
	for id, i := range r.itemRepo.items {
		itemsBefore[id] = *i
	}
	productsBefore := map[string]entity.Product{}
	for id, p := range r.productRepo.products {
		productsBefore[id] = *p
	}
	if err := fn(r.txRepo, r.itemRepo, r.productRepo); err != nil {
		r.txRepo.created = r.txRepo.created[:txBefore]
		for id, i := range itemsBefore {
			clone := i
			r.itemRepo.items[id] = &clone
		}
		for id, p := range productsBefore {
			clone := p
			r.productRepo.products[id] = &clone
		}
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado de escenarios
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	cartUC     *cart.UseCase
	checkoutUC *checkout.UseCase
	products   *fakeProductRepo
	items      *fakeItemRepo
	txs        *fakeTxRepo
	sessions   cart.SessionStore
}

func newFixture(policy checkout.Policy) *fixture {
	products := &fakeProductRepo{products: map[string]*entity.Product{}}
	items := &fakeItemRepo{items: map[string]*entity.InventoryItem{}}
	txs := &fakeTxRepo{}
	accounts := &fakeAccountRepo{accounts: map[string]*entity.FinancialAccount{
		"acc-1": {ID: "acc-1", Name: "Caja principal", Kind: "CASH"},
	}}
	customers := &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
	sessions := memory.NewCartStore()
	cartUC := cart.NewUseCase(sessions, products, "VES")
	runner := &fakeTxRunner{txRepo: txs, itemRepo: items, productRepo: products}
	checkoutUC := checkout.NewUseCase(
		runner, sessions, cartUC, accounts, customers, txs, nil, policy, logger.Nop(),
	)
	return &fixture{
		cartUC:     cartUC,
		checkoutUC: checkoutUC,
		products:   products,
		items:      items,
		txs:        txs,
		sessions:   sessions,
	}
}

func (f *fixture) addItem(id string, onHand string) {
	f.items.items[id] = &entity.InventoryItem{
		ID:             id,
		Name:           id,
		QuantityOnHand: decimal.RequireFromString(onHand),
		UpdatedAt:      time.Now(),
	}
}

func (f *fixture) addComposite(id string, price int64, components ...entity.Component) {
	f.products.products[id] = &entity.Product{
		ID:         id,
		Name:       id,
		UnitPrice:  decimal.NewFromInt(price),
		Components: components,
	}
}

func (f *fixture) addDirect(id string, price, stock int64) {
	f.products.products[id] = &entity.Product{
		ID:          id,
		Name:        id,
		UnitPrice:   decimal.NewFromInt(price),
		DirectStock: stock,
	}
}

// toReview arma el carrito con las cantidades dadas y deja la sesión en
// revisión con pago fijado.
func (f *fixture) toReview(t *testing.T, quantities map[string]int64) {
	t.Helper()
	ctx := context.Background()
	for id, qty := range quantities {
		_, err := f.cartUC.AddLine(ctx, "staff-1", "suc-1", id)
		require.NoError(t, err)
		if qty > 1 {
			_, err = f.cartUC.SetQuantity(ctx, "staff-1", "suc-1", id, qty-1)
			require.NoError(t, err)
		}
	}
	_, err := f.checkoutUC.OpenReview(ctx, "staff-1", "suc-1")
	require.NoError(t, err)
	_, err = f.checkoutUC.SetPayment(ctx, "staff-1", "suc-1", dto.SetPaymentRequest{
		PaymentMethod: entity.PaymentCash, AccountID: "acc-1",
	})
	require.NoError(t, err)
}

func onHand(f *fixture, id string) string {
	return f.items.items[id].QuantityOnHand.String()
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestOpenReview_CarritoVacio(t *testing.T) {
	f := newFixture(checkout.Policy{AllowOversell: true})
	_, err := f.checkoutUC.OpenReview(context.Background(), "staff-1", "suc-1")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestSubmitSale_ExigeRevisionYPago(t *testing.T) {
	f := newFixture(checkout.Policy{AllowOversell: true})
	f.addDirect("p1", 45, 10)
	ctx := context.Background()

	_, err := f.cartUC.AddLine(ctx, "staff-1", "suc-1", "p1")
	require.NoError(t, err)

	// Sin abrir revisión
	_, err = f.checkoutUC.SubmitSale(ctx, "staff-1", "suc-1")
	assert.ErrorIs(t, err, domain.ErrCheckoutState)

	// En revisión pero sin pago
	_, err = f.checkoutUC.OpenReview(ctx, "staff-1", "suc-1")
	require.NoError(t, err)
	_, err = f.checkoutUC.SubmitSale(ctx, "staff-1", "suc-1")
	assert.ErrorIs(t, err, domain.ErrMissingPayment)
}

func TestSetPayment_CuentaInexistente(t *testing.T) {
	f := newFixture(checkout.Policy{AllowOversell: true})
	f.addDirect("p1", 45, 10)
	ctx := context.Background()
	_, err := f.cartUC.AddLine(ctx, "staff-1", "suc-1", "p1")
	require.NoError(t, err)
	_, err = f.checkoutUC.OpenReview(ctx, "staff-1", "suc-1")
	require.NoError(t, err)

	_, err = f.checkoutUC.SetPayment(ctx, "staff-1", "suc-1", dto.SetPaymentRequest{
		PaymentMethod: entity.PaymentCash, AccountID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAbort_ConservaCarritoYPermiteRetomar(t *testing.T) {
	f := newFixture(checkout.Policy{AllowOversell: true})
	f.addDirect("p1", 45, 10)
	f.toReview(t, map[string]int64{"p1": 2})
	ctx := context.Background()

	out, err := f.checkoutUC.Abort(ctx, "staff-1", "suc-1")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutAborted, out.Status)
	assert.Len(t, out.Lines, 1, "abortar no vacía el carrito")
	assert.Empty(t, f.txs.created, "abortar no registra transacción")
	assert.EqualValues(t, 10, f.products.products["p1"].DirectStock, "abortar no toca inventario")

	// Retomar la revisión desde ABORTED
	out, err = f.checkoutUC.OpenReview(ctx, "staff-1", "suc-1")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutReview, out.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Liquidación: consumo de inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitSale_ConsumoPorReceta(t *testing.T) {
	f := newFixture(checkout.Policy{AllowOversell: true})
	f.addItem("harina", "50")
	f.addItem("queso", "20")
	f.addComposite("arepa", 45,
		entity.Component{InventoryItemID: "harina", QuantityPerUnit: decimal.RequireFromString("0.2")},
		entity.Component{InventoryItemID: "queso", QuantityPerUnit: decimal.RequireFromString("0.1")},
	)
	f.toReview(t, map[string]int64{"arepa": 10})

	out, err := f.checkoutUC.SubmitSale(context.Background(), "staff-1", "suc-1")
	require.NoError(t, err)

	// Consumo = cantidad × consumo por unidad
	assert.Equal(t, "48", onHand(f, "harina"))
	assert.Equal(t, "19", onHand(f, "queso"))
	assert.Equal(t, "450", out.Amount.String())
	require.Len(t, f.txs.created, 1)
}

func TestSubmitSale_StockDirectoAcotadoEnCero(t *testing.T) {
	f := newFixture(checkout.Policy{AllowOversell: true})
	f.addDirect("refresco", 25, 2)
	f.toReview(t, map[string]int64{"refresco": 5})

	_, err := f.checkoutUC.SubmitSale(context.Background(), "staff-1", "suc-1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, f.products.products["refresco"].DirectStock,
		"el stock directo nunca queda negativo")
}

func TestSubmitSale_RecetaPuedeDejarNegativo(t *testing.T) {
	f := newFixture(checkout.Policy{AllowOversell: true})
	f.addItem("harina", "1")
	f.addComposite("arepa", 45,
		entity.Component{InventoryItemID: "harina", QuantityPerUnit: decimal.NewFromInt(1)},
	)
	f.toReview(t, map[string]int64{"arepa": 3})

	_, err := f.checkoutUC.SubmitSale(context.Background(), "staff-1", "suc-1")
	require.NoError(t, err)
	assert.Equal(t, "-2", onHand(f, "harina"),
		"con sobreventa permitida la materia prima puede quedar negativa")
}

func TestSubmitSale_AmbasRutasParaElMismoProducto(t *testing.T) {
	// Producto con receta Y stock directo: se consumen ambos.
	f := newFixture(checkout.Policy{AllowOversell: true})
	f.addItem("harina", "10")
	f.products.products["combo"] = &entity.Product{
		ID:          "combo",
		Name:        "combo",
		UnitPrice:   decimal.NewFromInt(60),
		DirectStock: 5,
		Components: []entity.Component{
			{InventoryItemID: "harina", QuantityPerUnit: decimal.NewFromInt(2)},
		},
	}
	f.toReview(t, map[string]int64{"combo": 2})

	_, err := f.checkoutUC.SubmitSale(context.Background(), "staff-1", "suc-1")
	require.NoError(t, err)
	assert.Equal(t, "6", onHand(f, "harina"))
	assert.EqualValues(t, 3, f.products.products["combo"].DirectStock)
}

func TestSubmitSale_ReferenciaObsoletaSeOmite(t *testing.T) {
	f := newFixture(checkout.Policy{AllowOversell: true})
	f.addItem("queso", "20")
	f.addComposite("arepa", 45,
		entity.Component{InventoryItemID: "harina-borrada", QuantityPerUnit: decimal.NewFromInt(1)},
		entity.Component{InventoryItemID: "queso", QuantityPerUnit: decimal.NewFromInt(1)},
	)
	f.toReview(t, map[string]int64{"arepa": 2})

	_, err := f.checkoutUC.SubmitSale(context.Background(), "staff-1", "suc-1")
	require.NoError(t, err, "una referencia obsoleta no bloquea el cobro")
	assert.Equal(t, "18", onHand(f, "queso"), "los componentes vigentes sí se consumen")
	require.Len(t, f.txs.created, 1)
}

func TestSubmitSale_ProductoBorradoSeOmite(t *testing.T) {
	f := newFixture(checkout.Policy{AllowOversell: true})
	f.addDirect("p1", 45, 10)
	f.toReview(t, map[string]int64{"p1": 1})

	// El producto desaparece entre el armado y el commit.
	delete(f.products.products, "p1")

	out, err := f.checkoutUC.SubmitSale(context.Background(), "staff-1", "suc-1")
	require.NoError(t, err)
	assert.Equal(t, "45", out.Amount.String(), "el monto viene del carrito, no del catálogo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Política de sobreventa
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitSale_SinSobreventa_FallaYRevierte(t *testing.T) {
	f := newFixture(checkout.Policy{AllowOversell: false})
	f.addItem("harina", "1")
	f.addComposite("arepa", 45,
		entity.Component{InventoryItemID: "harina", QuantityPerUnit: decimal.NewFromInt(1)},
	)
	f.toReview(t, map[string]int64{"arepa": 3})

	_, err := f.checkoutUC.SubmitSale(context.Background(), "staff-1", "suc-1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, "1", onHand(f, "harina"), "el rollback restaura la existencia")
	assert.Empty(t, f.txs.created, "la transacción no queda registrada")
}

func TestSubmitSale_SinSobreventa_StockDirectoInsuficiente(t *testing.T) {
	f := newFixture(checkout.Policy{AllowOversell: false})
	f.addDirect("refresco", 25, 2)
	f.toReview(t, map[string]int64{"refresco": 5})

	_, err := f.checkoutUC.SubmitSale(context.Background(), "staff-1", "suc-1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.EqualValues(t, 2, f.products.products["refresco"].DirectStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacción resultante
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitSale_TransaccionConDescuentosYDivisa(t *testing.T) {
	f := newFixture(checkout.Policy{AllowOversell: true})
	f.addDirect("combo", 200, 50)
	ctx := context.Background()

	_, err := f.cartUC.AddLine(ctx, "staff-1", "suc-1", "combo")
	require.NoError(t, err)
	_, err = f.cartUC.SetQuantity(ctx, "staff-1", "suc-1", "combo", 1)
	require.NoError(t, err)
	_, err = f.cartUC.SetDiscount(ctx, "staff-1", "suc-1", "combo", decimal.NewFromInt(30))
	require.NoError(t, err)
	_, err = f.cartUC.SetOrderDiscount(ctx, "staff-1", "suc-1", decimal.NewFromInt(40))
	require.NoError(t, err)
	_, err = f.cartUC.SetForeignMode(ctx, "staff-1", "suc-1", dto.SetForeignModeRequest{
		Active: true, ForeignCurrency: "USD", ExchangeRate: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	_, err = f.checkoutUC.OpenReview(ctx, "staff-1", "suc-1")
	require.NoError(t, err)
	_, err = f.checkoutUC.SetPayment(ctx, "staff-1", "suc-1", dto.SetPaymentRequest{
		PaymentMethod: entity.PaymentCard, AccountID: "acc-1",
	})
	require.NoError(t, err)

	out, err := f.checkoutUC.SubmitSale(ctx, "staff-1", "suc-1")
	require.NoError(t, err)

	// 2×200 − 2×30 − 40 = 300
	assert.Equal(t, "300", out.Amount.String())
	assert.Equal(t, "VES", out.Currency)
	require.NotNil(t, out.ForeignAmount)
	assert.Equal(t, "3.00", out.ForeignAmount.StringFixed(2))
	assert.Equal(t, "USD", out.ForeignCurrency)
	assert.Equal(t, entity.PaymentCard, out.PaymentMethod)
	assert.Equal(t, entity.TransactionTypeSale, out.Type)
	assert.Equal(t, "acc-1", out.AccountID)
	assert.Equal(t, "staff-1", out.StaffID)
	assert.Equal(t, "suc-1", out.BranchID)
}

func TestSubmitSale_ClienteInexistenteDegradaAMostrador(t *testing.T) {
	f := newFixture(checkout.Policy{AllowOversell: true})
	f.addDirect("p1", 45, 10)
	ctx := context.Background()

	_, err := f.cartUC.AddLine(ctx, "staff-1", "suc-1", "p1")
	require.NoError(t, err)
	_, err = f.cartUC.SetCustomer(ctx, "staff-1", "suc-1", "cliente-borrado")
	require.NoError(t, err)
	_, err = f.checkoutUC.OpenReview(ctx, "staff-1", "suc-1")
	require.NoError(t, err)
	_, err = f.checkoutUC.SetPayment(ctx, "staff-1", "suc-1", dto.SetPaymentRequest{
		PaymentMethod: entity.PaymentCash, AccountID: "acc-1",
	})
	require.NoError(t, err)

	out, err := f.checkoutUC.SubmitSale(ctx, "staff-1", "suc-1")
	require.NoError(t, err)
	assert.Empty(t, out.CustomerID, "cliente borrado: la venta sale a mostrador")
}

func TestSubmitSale_SesionNuevaConservaMonedaYDivisa(t *testing.T) {
	f := newFixture(checkout.Policy{AllowOversell: true})
	f.addDirect("p1", 45, 10)
	ctx := context.Background()

	_, err := f.cartUC.AddLine(ctx, "staff-1", "suc-1", "p1")
	require.NoError(t, err)
	_, err = f.cartUC.SetForeignMode(ctx, "staff-1", "suc-1", dto.SetForeignModeRequest{
		Active: true, ForeignCurrency: "USD", ExchangeRate: decimal.NewFromInt(300),
	})
	require.NoError(t, err)
	_, err = f.checkoutUC.OpenReview(ctx, "staff-1", "suc-1")
	require.NoError(t, err)
	_, err = f.checkoutUC.SetPayment(ctx, "staff-1", "suc-1", dto.SetPaymentRequest{
		PaymentMethod: entity.PaymentCash, AccountID: "acc-1",
	})
	require.NoError(t, err)
	_, err = f.checkoutUC.SubmitSale(ctx, "staff-1", "suc-1")
	require.NoError(t, err)

	out, err := f.cartUC.View(ctx, "staff-1", "suc-1")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutCartOpen, out.Status)
	assert.Empty(t, out.Lines)
	assert.Equal(t, "VES", out.Currency)
	assert.Equal(t, "USD", out.ForeignCurrency,
		"el modo divisa sobrevive a la liquidación para la siguiente venta")
}

func TestGetSale(t *testing.T) {
	f := newFixture(checkout.Policy{AllowOversell: true})
	f.addDirect("p1", 45, 10)
	f.toReview(t, map[string]int64{"p1": 1})
	ctx := context.Background()

	created, err := f.checkoutUC.SubmitSale(ctx, "staff-1", "suc-1")
	require.NoError(t, err)

	got, err := f.checkoutUC.GetSale(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Amount, got.Amount)

	_, err = f.checkoutUC.GetSale(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

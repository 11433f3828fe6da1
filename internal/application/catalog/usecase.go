package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/pos"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// UseCase catálogo de productos: CRUD, importación por lote y resolución de
// disponibilidad por receta. No valida más allá de los campos requeridos:
// precio y stock en cero son válidos.
type UseCase struct {
	productRepo repository.ProductRepository
	itemRepo    repository.InventoryItemRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(productRepo repository.ProductRepository, itemRepo repository.InventoryItemRepository) *UseCase {
	return &UseCase{productRepo: productRepo, itemRepo: itemRepo}
}

// Create crea un producto con ID fresco.
func (uc *UseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	product := fromCreateRequest(in)
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product, entity.ScopeAll)
}

// Import importa un lote: cada registro recibe un ID fresco, sin intento de
// de-duplicación (dos importaciones del mismo archivo duplican el catálogo).
func (uc *UseCase) Import(in dto.ImportProductsRequest) ([]dto.ProductResponse, error) {
	out := make([]dto.ProductResponse, 0, len(in.Products))
	for _, req := range in.Products {
		if req.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product := fromCreateRequest(req)
		if err := uc.productRepo.Create(product); err != nil {
			return nil, err
		}
		resp, err := uc.toResponse(product, entity.ScopeAll)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Update aplica una actualización parcial.
func (uc *UseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	if in.UnitMeasure != nil {
		product.UnitMeasure = *in.UnitMeasure
	}
	if in.DirectStock != nil {
		product.DirectStock = *in.DirectStock
	}
	if in.BranchID != nil {
		product.BranchID = *in.BranchID
	}
	if in.Components != nil {
		product.Components = fromComponentInputs(in.Components)
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product, entity.ScopeAll)
}

// Delete elimina un producto del catálogo.
func (uc *UseCase) Delete(id string) error {
	return uc.productRepo.Delete(id)
}

// GetByID devuelve un producto con su disponibilidad en el alcance dado.
func (uc *UseCase) GetByID(id, scope string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(product, scope)
}

// List lista el catálogo paginado con disponibilidad resuelta.
func (uc *UseCase) List(scope string, limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp, err := uc.toResponse(p, scope)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AvailableUnits resuelve la receta contra el inventario visible en el
// alcance. Lectura pura y repetible: el catálogo la invoca en cada render.
func (uc *UseCase) AvailableUnits(productID, scope string) (int64, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	items, err := uc.scopedComponentItems(product, scope)
	if err != nil {
		return 0, err
	}
	return pos.AvailableUnits(product, items), nil
}

// scopedComponentItems carga los ítems de la receta y descarta los que no son
// visibles desde el alcance (misma regla del filtro de sucursal).
func (uc *UseCase) scopedComponentItems(product *entity.Product, scope string) (map[string]*entity.InventoryItem, error) {
	if !product.IsComposite() {
		return nil, nil
	}
	ids := make([]string, 0, len(product.Components))
	for _, c := range product.Components {
		ids = append(ids, c.InventoryItemID)
	}
	items, err := uc.itemRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if scope == entity.ScopeAll {
		return items, nil
	}
	visible := make(map[string]*entity.InventoryItem, len(items))
	for id, item := range items {
		if item.BranchID == "" || item.BranchID == scope {
			visible[id] = item
		}
	}
	return visible, nil
}

func (uc *UseCase) toResponse(p *entity.Product, scope string) (*dto.ProductResponse, error) {
	items, err := uc.scopedComponentItems(p, scope)
	if err != nil {
		return nil, err
	}
	components := make([]dto.ComponentInput, 0, len(p.Components))
	for _, c := range p.Components {
		components = append(components, dto.ComponentInput{
			InventoryItemID: c.InventoryItemID,
			QuantityPerUnit: c.QuantityPerUnit,
		})
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		UnitPrice:      p.UnitPrice,
		UnitMeasure:    p.UnitMeasure,
		DirectStock:    p.DirectStock,
		Components:     components,
		BranchID:       p.BranchID,
		AvailableUnits: pos.AvailableUnits(p, items),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}, nil
}

func fromCreateRequest(in dto.CreateProductRequest) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		UnitPrice:   in.UnitPrice,
		UnitMeasure: in.UnitMeasure,
		DirectStock: in.DirectStock,
		Components:  fromComponentInputs(in.Components),
		BranchID:    in.BranchID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func fromComponentInputs(in []dto.ComponentInput) []entity.Component {
	if len(in) == 0 {
		return nil
	}
	out := make([]entity.Component, 0, len(in))
	for _, c := range in {
		if !c.QuantityPerUnit.GreaterThan(decimal.Zero) {
			continue // una receta con consumo no positivo no aporta nada
		}
		out = append(out, entity.Component{
			InventoryItemID: c.InventoryItemID,
			QuantityPerUnit: c.QuantityPerUnit,
		})
	}
	return out
}

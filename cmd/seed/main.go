// seed puebla la base con datos de demostración: una sucursal, un operador
// admin, una cuenta de caja, materia prima y un producto con receta.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/infrastructure/postgres"
	"github.com/jhoicas/PuntoVenta-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	now := time.Now()

	branchRepo := postgres.NewBranchRepository(pool)
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		Name:      "Sucursal Centro",
		Address:   "Av. Principal 123",
		Phone:     "0212-5550101",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := branchRepo.Create(branch); err != nil {
		fail("crear sucursal", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de contraseña", err)
	}
	staffRepo := postgres.NewStaffRepository(pool)
	admin := &entity.Staff{
		ID:           uuid.New().String(),
		Username:     "admin",
		Name:         "Administrador",
		PasswordHash: string(hash),
		Role:         "admin",
		BranchID:     branch.ID,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := staffRepo.Create(admin); err != nil {
		fail("crear operador admin", err)
	}

	accountRepo := postgres.NewAccountRepository(pool)
	caja := &entity.FinancialAccount{
		ID:        uuid.New().String(),
		Name:      "Caja principal",
		Kind:      "CASH",
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := accountRepo.Create(caja); err != nil {
		fail("crear cuenta de caja", err)
	}

	itemRepo := postgres.NewInventoryItemRepository(pool)
	harina := &entity.InventoryItem{
		ID:             uuid.New().String(),
		Name:           "Harina de maíz",
		QuantityOnHand: decimal.NewFromInt(50),
		MinThreshold:   decimal.NewFromInt(10),
		UnitMeasure:    "kg",
		BranchID:       branch.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	queso := &entity.InventoryItem{
		ID:             uuid.New().String(),
		Name:           "Queso blanco",
		QuantityOnHand: decimal.NewFromInt(20),
		MinThreshold:   decimal.NewFromInt(5),
		UnitMeasure:    "kg",
		BranchID:       branch.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, item := range []*entity.InventoryItem{harina, queso} {
		if err := itemRepo.Create(item); err != nil {
			fail("crear ítem de inventario", err)
		}
	}

	productRepo := postgres.NewProductRepository(pool)
	arepa := &entity.Product{
		ID:          uuid.New().String(),
		Name:        "Arepa de queso",
		Category:    "Comida",
		UnitPrice:   decimal.NewFromInt(45),
		UnitMeasure: "und",
		Components: []entity.Component{
			{InventoryItemID: harina.ID, QuantityPerUnit: decimal.RequireFromString("0.2")},
			{InventoryItemID: queso.ID, QuantityPerUnit: decimal.RequireFromString("0.1")},
		},
		BranchID:  branch.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	refresco := &entity.Product{
		ID:          uuid.New().String(),
		Name:        "Refresco 355ml",
		Category:    "Bebidas",
		UnitPrice:   decimal.NewFromInt(25),
		UnitMeasure: "und",
		DirectStock: 48,
		BranchID:    branch.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, p := range []*entity.Product{arepa, refresco} {
		if err := productRepo.Create(p); err != nil {
			fail("crear producto", err)
		}
	}

	fmt.Println("datos de demostración creados")
	fmt.Println("  sucursal:", branch.ID)
	fmt.Println("  operador: admin / admin12345")
	fmt.Println("  cuenta:  ", caja.ID)
}

func fail(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

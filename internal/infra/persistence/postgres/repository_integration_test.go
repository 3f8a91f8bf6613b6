package postgres

import (
	"context"
	"os"
	"testing"

	"shopapi/internal/domain/entity"
	"shopapi/internal/domain/repository"
	"shopapi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openIntegrationDB connects to the database named by TEST_POSTGRES_DSN.
// Tests built on it are skipped when the variable is unset, so the suite
// stays runnable without a database.
func openIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set, skipping postgres integration test")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.AddressModel{},
		&model.SupplierModel{},
		&model.ProductModel{},
		&model.ImageModel{},
	))

	return db
}

// seedSuppliers creates count suppliers sharing one marker name so the test
// can page over exactly its own rows and clean them up afterwards.
func seedSuppliers(t *testing.T, db *gorm.DB, repo repository.SupplierRepository, count int) (string, []uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	marker := "pagination-" + uuid.Must(uuid.NewV7()).String()

	created := make([]uuid.UUID, 0, count)
	for i := 0; i < count; i++ {
		supplier := &entity.Supplier{Name: marker, PhoneNumber: "+12025550100"}
		require.NoError(t, repo.Create(ctx, supplier))
		created = append(created, supplier.ID)
	}

	t.Cleanup(func() {
		db.Where("name = ?", marker).Delete(&model.SupplierModel{})
	})

	return marker, created
}

func TestSupplierRepository_FindAll_PaginationDeterminism(t *testing.T) {
	db := openIntegrationDB(t)
	repo := NewSupplierRepository(db)

	ctx := context.Background()
	marker, created := seedSuppliers(t, db, repo, 5)
	filter := repository.SupplierFilter{Name: marker}

	tests := []struct {
		name    string
		offset  int
		limit   int
		wantIDs []uuid.UUID
	}{
		{name: "full page", offset: 0, limit: 5, wantIDs: created},
		{name: "middle slice", offset: 2, limit: 2, wantIDs: created[2:4]},
		{name: "limit past remaining", offset: 3, limit: 10, wantIDs: created[3:]},
		{name: "offset at end", offset: 5, limit: 5, wantIDs: nil},
		{name: "offset past end", offset: 10, limit: 5, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suppliers, err := repo.FindAll(ctx, filter, tt.offset, tt.limit)
			require.NoError(t, err)

			var gotIDs []uuid.UUID
			for _, supplier := range suppliers {
				gotIDs = append(gotIDs, supplier.ID)
			}

			// Every page is the creation-order slice, no more, no less.
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}

	// Repeating a read returns the identical slice.
	first, err := repo.FindAll(ctx, filter, 1, 3)
	require.NoError(t, err)
	second, err := repo.FindAll(ctx, filter, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSupplierRepository_Delete_Completeness(t *testing.T) {
	db := openIntegrationDB(t)
	repo := NewSupplierRepository(db)

	ctx := context.Background()
	_, created := seedSuppliers(t, db, repo, 1)

	supplier, err := repo.FindByID(ctx, created[0])
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, supplier))

	_, err = repo.FindByID(ctx, created[0])
	assert.ErrorIs(t, err, repository.ErrSupplierNotFound)
}

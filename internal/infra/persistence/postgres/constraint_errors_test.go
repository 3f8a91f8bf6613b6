package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintHelpers_RawPgErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		matcher func(error) bool
	}{
		{
			name:    "foreign key violation 23503",
			err:     &pgconn.PgError{Code: "23503", ConstraintName: "product_supplier_id_fkey"},
			matcher: isForeignKeyConstraintViolation,
		},
		{
			name:    "unique violation 23505",
			err:     &pgconn.PgError{Code: "23505", ConstraintName: "supplier_phone_number_key"},
			matcher: isUniqueConstraintViolation,
		},
		{
			name:    "check violation 23514",
			err:     &pgconn.PgError{Code: "23514", ConstraintName: "product_available_stock_check"},
			matcher: isCheckConstraintViolation,
		},
		{
			name:    "not null violation 23502",
			err:     &pgconn.PgError{Code: "23502", ColumnName: "client_name"},
			matcher: isNotNullConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.matcher(tt.err))

			// Repositories see the error after wrapping; detection must
			// survive the chain.
			assert.True(t, tt.matcher(errors.Wrap(tt.err, "create product")))
		})
	}
}

func TestConstraintHelpers_GormSentinels(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
}

func TestConstraintHelpers_UnrelatedErrors(t *testing.T) {
	unrelated := errors.New("connection reset by peer")

	assert.False(t, isUniqueConstraintViolation(unrelated))
	assert.False(t, isForeignKeyConstraintViolation(unrelated))
	assert.False(t, isCheckConstraintViolation(unrelated))
	assert.False(t, isNotNullConstraintViolation(unrelated))

	// A constraint code from another class must not match.
	serialization := &pgconn.PgError{Code: "40001"}
	assert.False(t, isForeignKeyConstraintViolation(serialization))
	assert.False(t, isUniqueConstraintViolation(serialization))
}

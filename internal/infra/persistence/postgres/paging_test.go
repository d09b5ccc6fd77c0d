package postgres

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func TestSortColumns_OrderBy(t *testing.T) {
	tests := []struct {
		name     string
		page     entity.PageRequest
		wantCols []string
		wantDesc bool
	}{
		{
			name:     "whitelisted key ascending",
			page:     entity.PageRequest{SortBy: "price", Direction: "ASC"},
			wantCols: []string{"price", "id"},
		},
		{
			name:     "direction is case-insensitive",
			page:     entity.PageRequest{SortBy: "name", Direction: "desc"},
			wantCols: []string{"name", "id"},
			wantDesc: true,
		},
		{
			name:     "unknown key falls back",
			page:     entity.PageRequest{SortBy: "price; DROP TABLE products", Direction: "ASC"},
			wantCols: []string{"created_at", "id"},
		},
		{
			name:     "tie break is not repeated",
			page:     entity.PageRequest{SortBy: "id"},
			wantCols: []string{"id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderBy := productSortColumns.orderBy(tt.page)

			require.Len(t, orderBy.Columns, len(tt.wantCols))
			for i, col := range orderBy.Columns {
				assert.Equal(t, clause.Column{Name: tt.wantCols[i], Raw: true}, col.Column)
				assert.Equal(t, tt.wantDesc, col.Desc)
			}
		})
	}
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%dell%", containsPattern("  DeLL "))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
}

func TestProductMappers_EmptyCollections(t *testing.T) {
	productM := fromProductDomain(&entity.Product{Name: "Bare"})

	assert.NotNil(t, []string(productM.ImageURLs))
	assert.NotNil(t, productM.Specifications.Data())

	product := toProductDomain(productM)
	assert.Empty(t, product.ImageURLs)
	assert.NotNil(t, product.ImageURLs)
	assert.NotNil(t, product.Specifications)
	assert.Nil(t, product.Category)
}

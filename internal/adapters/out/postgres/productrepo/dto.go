// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence, including the per-variant stock rows.
package productrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product aggregates.
// Simple products carry stock on the row itself; variant products keep stock on
// VariantDTO rows and only the shared sold counter here. The sku column stays
// empty for variant products.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind      int
	Name      string `gorm:"not null"`
	SKU       string `gorm:"index"`
	Quantity  int
	TotalSold int
	Version   int64
	Variants  []VariantDTO `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// VariantDTO represents one sellable size of a variant product.
type VariantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`
	SKU       string    `gorm:"index;not null"`
	Size      string
	Quantity  int
}

// TableName specifies the database table name for variant entities.
func (VariantDTO) TableName() string {
	return "product_variants"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	variants := make([]VariantDTO, 0, len(aggregate.Variants()))
	for _, v := range aggregate.Variants() {
		variants = append(variants, VariantDTO{
			ID:        v.ID().Bytes(),
			ProductID: aggregate.ID().Bytes(),
			SKU:       v.SKU(),
			Size:      v.Size(),
			Quantity:  v.Quantity(),
		})
	}

	return ProductDTO{
		ID:        aggregate.ID().Bytes(),
		Kind:      int(aggregate.Kind()),
		Name:      aggregate.Name(),
		SKU:       aggregate.SKU(),
		Quantity:  aggregate.Quantity(),
		TotalSold: aggregate.TotalSold(),
		Version:   aggregate.Version(),
		Variants:  variants,
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	variants := make([]*product.Variant, 0, len(dto.Variants))
	for _, row := range dto.Variants {
		variantID, variantErr := kernel.UUIDFromBytes(row.ID[:])
		if variantErr != nil {
			return nil, variantErr
		}

		v, variantErr := product.RestoreVariant(variantID, row.SKU, row.Size, row.Quantity)
		if variantErr != nil {
			return nil, variantErr
		}

		variants = append(variants, v)
	}

	return product.RestoreProduct(
		id,
		product.Kind(dto.Kind),
		dto.Name,
		dto.SKU,
		dto.Quantity,
		dto.TotalSold,
		variants,
		dto.Version,
	)
}

package models

// Product is a catalog item. Industry is referenced by name, not by id:
// the join is by name equality and survives industry deletion.
type Product struct {
	ID           int64              `gorm:"primaryKey" json:"id" validate:"required"`
	Name         string             `gorm:"size:255;not null;index" json:"nome" validate:"required"`
	Price        float64            `gorm:"not null" json:"preco" validate:"gte=0"`
	IndustryName string             `gorm:"size:255;not null" json:"industria"`
	Description  *string            `gorm:"size:2000" json:"descricao,omitempty"`
	Images       []ProductImage     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"imagens"`
	Variations   []ProductVariation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variacoes"`
	CreatedAt    string             `gorm:"size:40" json:"dataCadastro"`
	UpdatedAt    *string            `gorm:"size:40" json:"dataAtualizacao,omitempty"`
}

// ProductImage is an image owned by a product. OrderIndex preserves the
// insertion order of the image list; the whole set is replaced on update.
type ProductImage struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductID  int64  `gorm:"not null;index" json:"-"`
	Image      string `gorm:"type:text;not null" json:"imagem"`
	OrderIndex int    `gorm:"not null" json:"ordem"`
}

// ProductVariation is a {type, value} pair owned by a product, e.g.
// {"cor", "azul"}. No ordering guarantee.
type ProductVariation struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductID int64  `gorm:"not null;index" json:"-"`
	Type      string `gorm:"size:100;not null" json:"tipo"`
	Value     string `gorm:"size:255;not null" json:"valor"`
}

// TableName overrides the table name for Product
func (Product) TableName() string {
	return "products"
}

// TableName overrides the table name for ProductImage
func (ProductImage) TableName() string {
	return "product_images"
}

// TableName overrides the table name for ProductVariation
func (ProductVariation) TableName() string {
	return "product_variations"
}

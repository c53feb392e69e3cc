package models

// Industry is a supplier whose products the sales rep carries.
type Industry struct {
	ID              int64   `gorm:"primaryKey" json:"id" validate:"required"`
	TaxID           string  `gorm:"size:20;not null;uniqueIndex" json:"cnpj" validate:"required"`
	Name            string  `gorm:"size:255;not null;index" json:"nome" validate:"required"`
	CommercialPhone *string `gorm:"size:30" json:"telefoneComercial,omitempty"`
	SupportPhone    *string `gorm:"size:30" json:"telefoneSuporte,omitempty"`
	Email           *string `gorm:"size:255" json:"email,omitempty"`
	CreatedAt       string  `gorm:"size:40" json:"dataCadastro"`
	EditedAt        *string `gorm:"size:40" json:"dataEdicao,omitempty"`
}

// TableName overrides the table name for Industry
func (Industry) TableName() string {
	return "industries"
}

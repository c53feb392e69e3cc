package models

// Client is a customer of the sales app. The address has no independent
// lifecycle and is stored flattened on the client row.
type Client struct {
	ID             int64   `gorm:"primaryKey" json:"id" validate:"required"`
	TaxID          string  `gorm:"size:20;not null;uniqueIndex" json:"cnpj" validate:"required"`
	TradeName      string  `gorm:"size:255;not null;index" json:"nomeFantasia" validate:"required"`
	LegalName      string  `gorm:"size:255;not null" json:"razaoSocial" validate:"required"`
	StateRegID     *string `gorm:"size:30" json:"inscricaoEstadual,omitempty"`
	BuyerName      *string `gorm:"size:255" json:"nomeComprador,omitempty"`
	Email          *string `gorm:"size:255" json:"email,omitempty"`
	Phone          *string `gorm:"size:30" json:"telefone,omitempty"`
	BirthDate      *string `gorm:"size:30" json:"dataNascimento,omitempty"`
	AddrPostal     *string `gorm:"size:12" json:"cep,omitempty"`
	AddrStreet     *string `gorm:"size:255" json:"endereco,omitempty"`
	AddrNumber     *string `gorm:"size:20" json:"numero,omitempty"`
	AddrComplement *string `gorm:"size:255" json:"complemento,omitempty"`
	AddrDistrict   *string `gorm:"size:255" json:"bairro,omitempty"`
	AddrCity       *string `gorm:"size:255" json:"cidade,omitempty"`
	AddrState      *string `gorm:"size:5" json:"estado,omitempty"`
	CreatedAt      string  `gorm:"size:40" json:"dataCadastro"`
	UpdatedAt      *string `gorm:"size:40" json:"dataAtualizacao,omitempty"`
}

// TableName overrides the table name for Client
func (Client) TableName() string {
	return "clients"
}

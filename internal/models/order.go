package models

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentMethod is how an order is paid.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodPix      PaymentMethod = "pix"
	PaymentMethodBankSlip PaymentMethod = "bank_slip"
)

// DiscountType qualifies a discount value, at order or line level.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Order is a sale. ClientName is a snapshot of the client's trade name at
// order time; renaming the client later never alters historical orders,
// mirroring the line-item price snapshot.
type Order struct {
	ID            int64              `gorm:"primaryKey" json:"id" validate:"required"`
	ClientName    string             `gorm:"size:255;not null" json:"cliente" validate:"required"`
	Total         float64            `gorm:"not null" json:"total"`
	DiscountType  *string            `gorm:"size:15" json:"tipoDesconto,omitempty"`
	DiscountValue float64            `json:"valorDesconto"`
	PaymentMethod string             `gorm:"size:20;not null" json:"formaPagamento"`
	Notes         *string            `gorm:"size:2000" json:"observacoes,omitempty"`
	Status        string             `gorm:"size:20;not null;default:'pending'" json:"status"`
	LineItems     []OrderLineItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"itens" validate:"dive"`
	Installments  []OrderInstallment `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"prazos"`
	CreatedAt     string             `gorm:"size:40" json:"dataCriacao"`
}

// OrderLineItem snapshots product name and unit price at order time. It
// deliberately does not re-read the product table, so later catalog edits
// never retroactively change historical orders. ProductID is kept only as
// a loose back reference and may be null.
type OrderLineItem struct {
	ID             uint64  `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID        int64   `gorm:"not null;index" json:"-"`
	ProductID      *int64  `json:"produtoId,omitempty"`
	Name           string  `gorm:"size:255;not null" json:"nome" validate:"required"`
	Price          float64 `gorm:"not null" json:"preco" validate:"gte=0"`
	Quantity       int     `gorm:"not null" json:"quantidade" validate:"gte=1"`
	DiscountType   *string `gorm:"size:15" json:"tipoDesconto,omitempty"`
	DiscountValue  float64 `json:"valorDesconto"`
	VariationType  *string `gorm:"size:100" json:"tipoVariacao,omitempty"`
	VariationValue *string `gorm:"size:255" json:"valorVariacao,omitempty"`
}

// OrderInstallment is one bank-slip installment term, a plain day count
// from the order date.
type OrderInstallment struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID int64  `gorm:"not null;index" json:"-"`
	Days    int    `gorm:"not null" json:"dias"`
}

// TableName overrides the table name for Order
func (Order) TableName() string {
	return "orders"
}

// TableName overrides the table name for OrderLineItem
func (OrderLineItem) TableName() string {
	return "order_line_items"
}

// TableName overrides the table name for OrderInstallment
func (OrderInstallment) TableName() string {
	return "order_installments"
}

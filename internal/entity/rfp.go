package entity

import (
	"github.com/google/uuid"
)

type Item struct {
	Name  string            `json:"name" db:"name"`
	Qty   *int              `json:"qty" db:"qty"`
	Specs map[string]string `json:"specs,omitempty" db:"specs"`
}

// db model
type Rfp struct {
	Id             uuid.UUID `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	Items          []Item    `json:"items"`
	Budget         *float64  `json:"budget" db:"budget"`
	DeliveryDays   *int      `json:"deliveryDays" db:"delivery_days"`
	PaymentTerms   *string   `json:"paymentTerms" db:"payment_terms"`
	WarrantyMonths *int      `json:"warrantyMonths" db:"warranty_months"`
	CreatedAt      string    `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateRfpInput struct {
	Title          string // extractor output
	Description    string // raw text, verbatim
	Items          []Item
	Budget         *float64
	DeliveryDays   *int
	PaymentTerms   *string
	WarrantyMonths *int
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

// controller model
type RfpOutputModel struct {
	Id             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Items          []Item   `json:"items"`
	Budget         *float64 `json:"budget"`
	DeliveryDays   *int     `json:"deliveryDays"`
	PaymentTerms   *string  `json:"paymentTerms"`
	WarrantyMonths *int     `json:"warrantyMonths"`
	CreatedAt      string   `json:"createdAt"`
}

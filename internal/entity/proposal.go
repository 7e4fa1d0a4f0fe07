package entity

import (
	"github.com/google/uuid"
)

// db model. VendorId stays a plain string: a reply from an address no
// vendor record matches keeps the address itself as the vendor id.
type Proposal struct {
	Id             uuid.UUID  `json:"id" db:"id"`
	RfpId          *uuid.UUID `json:"rfpId" db:"rfp_id"`
	VendorId       string     `json:"vendorId" db:"vendor_id"`
	RawText        string     `json:"rawText" db:"raw_text"`
	TotalPrice     *float64   `json:"totalPrice" db:"total_price"`
	DeliveryDays   *int       `json:"deliveryDays" db:"delivery_days"`
	WarrantyMonths *int       `json:"warrantyMonths" db:"warranty_months"`
	Notes          string     `json:"notes" db:"notes"`
	Score          *float64   `json:"score" db:"score"`
	CreatedAt      string     `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateProposalInput struct {
	RfpId          *uuid.UUID
	VendorId       string
	RawText        string
	TotalPrice     *float64
	DeliveryDays   *int
	WarrantyMonths *int
	Notes          string
	Score          *float64 // set when the RFP is known at ingest time
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

// service input model for the inbound webhook
type InboundReplyInput struct {
	FromEmail string
	Subject   string
	Body      string
}

// controller model
type ProposalOutputModel struct {
	Id             string   `json:"id"`
	RfpId          *string  `json:"rfpId"`
	VendorId       string   `json:"vendorId"`
	TotalPrice     *float64 `json:"totalPrice"`
	DeliveryDays   *int     `json:"deliveryDays"`
	WarrantyMonths *int     `json:"warrantyMonths"`
	Notes          string   `json:"notes"`
	Score          *float64 `json:"score"`
	CreatedAt      string   `json:"createdAt"`
}

// controller model for proposal comparison. Best is nil when the RFP has
// no proposals yet.
type ComparisonOutputModel struct {
	Best      *ProposalOutputModel  `json:"best"`
	Proposals []ProposalOutputModel `json:"proposals"`
}

package entity

import "github.com/google/uuid"

// Simulated delivery: sending an RFP appends one message per vendor,
// nothing leaves the system.
type OutboxMessage struct {
	Id          uuid.UUID `json:"id" db:"id"`
	RfpId       uuid.UUID `json:"rfpId" db:"rfp_id"`
	VendorId    uuid.UUID `json:"vendorId" db:"vendor_id"`
	VendorEmail string    `json:"vendorEmail" db:"vendor_email"`
	Subject     string    `json:"subject" db:"subject"`
	Body        string    `json:"body" db:"body"`
	CreatedAt   string    `json:"createdAt" db:"created_at"`
}

type CreateOutboxMessageInput struct {
	RfpId       uuid.UUID
	VendorId    uuid.UUID
	VendorEmail string
	Subject     string
	Body        string
}

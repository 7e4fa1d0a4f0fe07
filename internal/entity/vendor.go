package entity

import "github.com/google/uuid"

type Vendor struct {
	Id          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	ContactName string    `json:"contactName" db:"contact_name"`
	CreatedAt   string    `json:"createdAt" db:"created_at"`
}

type CreateVendorInput struct {
	Name        string
	Email       string
	ContactName string
}

type VendorOutputModel struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	ContactName string `json:"contactName"`
	CreatedAt   string `json:"createdAt"`
}

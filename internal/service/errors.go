package service

import "errors"

var (
	ErrRfpNotFound      = errors.New("rfp not found")
	ErrProposalNotFound = errors.New("proposal not found")
	ErrNoVendorsMatched = errors.New("none of the given vendor ids exist")
)

package service

import (
	"context"
	"rfp-management-api/internal/entity"
	"rfp-management-api/internal/repo"
)

type VendorService struct {
	vendorRepo repo.Vendor
}

func NewVendorService(repos *repo.Repositories) *VendorService {
	return &VendorService{vendorRepo: repos.Vendor}
}

func (s *VendorService) CreateVendor(ctx context.Context, input *entity.CreateVendorInput) (*entity.VendorOutputModel, error) {
	id, err := s.vendorRepo.CreateVendor(ctx, input)
	if err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.GetVendorById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapVendor(vendor), nil
}

func (s *VendorService) GetVendors(ctx context.Context, pg *entity.PaginationInput) ([]entity.VendorOutputModel, error) {
	vendors, err := s.vendorRepo.GetVendors(ctx, pg)
	if err != nil {
		return nil, err
	}

	return mapVendors(vendors), nil
}

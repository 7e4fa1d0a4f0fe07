package service

import (
	"rfp-management-api/internal/entity"
	"rfp-management-api/internal/extract"
)

func mapRfp(r *entity.Rfp) *entity.RfpOutputModel {
	return &entity.RfpOutputModel{
		Id:             r.Id.String(),
		Title:          r.Title,
		Description:    r.Description,
		Items:          r.Items,
		Budget:         r.Budget,
		DeliveryDays:   r.DeliveryDays,
		PaymentTerms:   r.PaymentTerms,
		WarrantyMonths: r.WarrantyMonths,
		CreatedAt:      r.CreatedAt,
	}
}

func mapRfps(rfps []entity.Rfp) []entity.RfpOutputModel {
	s := make([]entity.RfpOutputModel, 0)
	for _, rfp := range rfps {
		s = append(s, *mapRfp(&rfp))
	}

	return s
}

func mapProposal(p *entity.Proposal) *entity.ProposalOutputModel {
	var rfpId *string
	if p.RfpId != nil {
		id := p.RfpId.String()
		rfpId = &id
	}

	return &entity.ProposalOutputModel{
		Id:             p.Id.String(),
		RfpId:          rfpId,
		VendorId:       p.VendorId,
		TotalPrice:     p.TotalPrice,
		DeliveryDays:   p.DeliveryDays,
		WarrantyMonths: p.WarrantyMonths,
		Notes:          p.Notes,
		Score:          p.Score,
		CreatedAt:      p.CreatedAt,
	}
}

func mapProposals(proposals []entity.Proposal) []entity.ProposalOutputModel {
	s := make([]entity.ProposalOutputModel, 0)
	for _, proposal := range proposals {
		s = append(s, *mapProposal(&proposal))
	}

	return s
}

func mapVendor(v *entity.Vendor) *entity.VendorOutputModel {
	return &entity.VendorOutputModel{
		Id:          v.Id.String(),
		Name:        v.Name,
		Email:       v.Email,
		ContactName: v.ContactName,
		CreatedAt:   v.CreatedAt,
	}
}

func mapVendors(vendors []entity.Vendor) []entity.VendorOutputModel {
	s := make([]entity.VendorOutputModel, 0)
	for _, vendor := range vendors {
		s = append(s, *mapVendor(&vendor))
	}

	return s
}

// proposalFields rebuilds the scorer's view of a stored proposal.
func proposalFields(p *entity.Proposal) *extract.ProposalFields {
	return &extract.ProposalFields{
		TotalPrice:     p.TotalPrice,
		DeliveryDays:   p.DeliveryDays,
		WarrantyMonths: p.WarrantyMonths,
		Notes:          p.Notes,
	}
}

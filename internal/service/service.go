package service

import (
	"context"
	"rfp-management-api/internal/entity"
	"rfp-management-api/internal/extract"
	"rfp-management-api/internal/repo"
)

type Diagnostics interface {
	Ping() error
}

type Rfp interface {
	CreateRfp(ctx context.Context, text string) (*entity.RfpOutputModel, error)
	GetRfpById(ctx context.Context, rfpId string) (*entity.RfpOutputModel, error)
	GetRfps(ctx context.Context, pg *entity.PaginationInput) ([]entity.RfpOutputModel, error)

	SendRfp(ctx context.Context, rfpId string, vendorIds []string) (int, error)
	GetOutboxByRfpId(ctx context.Context, rfpId string) ([]entity.OutboxMessage, error)
}

type Vendor interface {
	CreateVendor(ctx context.Context, input *entity.CreateVendorInput) (*entity.VendorOutputModel, error)
	GetVendors(ctx context.Context, pg *entity.PaginationInput) ([]entity.VendorOutputModel, error)
}

type Proposal interface {
	SubmitInboundReply(ctx context.Context, input *entity.InboundReplyInput) (*entity.ProposalOutputModel, error)
	GetProposalsForRfp(ctx context.Context, rfpId string) ([]entity.ProposalOutputModel, error)
	CompareProposals(ctx context.Context, rfpId string) (*entity.ComparisonOutputModel, error)
}

type Services struct {
	Diagnostics Diagnostics
	Rfp         Rfp
	Vendor      Vendor
	Proposal    Proposal
}

// NewServices wires the repositories with the active extractor. The
// extractor choice (deterministic vs LLM-backed) is made once at startup;
// services fall back to the deterministic one when the active extractor
// fails.
func NewServices(repos *repo.Repositories, extractor extract.Extractor) *Services {
	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Rfp:         NewRfpService(repos, extractor),
		Vendor:      NewVendorService(repos),
		Proposal:    NewProposalService(repos, extractor),
	}
}

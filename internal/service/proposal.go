package service

import (
	"context"
	"errors"
	"regexp"
	"rfp-management-api/internal/entity"
	"rfp-management-api/internal/extract"
	"rfp-management-api/internal/repo"
	"rfp-management-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

// Outgoing RFP subjects carry a "[RFPID:<uuid>]" token; inbound replies are
// linked back through it.
var rfpIdTokenPattern = regexp.MustCompile(`RFPID:([a-fA-F0-9\-]+)`)

type ProposalService struct {
	proposalRepo repo.Proposal
	rfpRepo      repo.Rfp
	vendorRepo   repo.Vendor
	extractor    extract.Extractor
	fallback     *extract.PatternExtractor
}

func NewProposalService(repos *repo.Repositories, extractor extract.Extractor) *ProposalService {
	return &ProposalService{
		proposalRepo: repos.Proposal,
		rfpRepo:      repos.Rfp,
		vendorRepo:   repos.Vendor,
		extractor:    extractor,
		fallback:     extract.NewPatternExtractor(),
	}
}

// SubmitInboundReply ingests a simulated vendor reply: link it to an RFP via
// the subject token, resolve the vendor by sender address, extract the
// structured fields and score right away when the RFP is known. A reply that
// can't be linked or whose sender is unknown is still accepted.
func (s *ProposalService) SubmitInboundReply(ctx context.Context, input *entity.InboundReplyInput) (*entity.ProposalOutputModel, error) {
	var rfp *entity.Rfp
	var rfpId *uuid.UUID
	if m := rfpIdTokenPattern.FindStringSubmatch(input.Subject); m != nil {
		found, err := s.rfpRepo.GetRfpById(ctx, m[1])
		if err == nil {
			rfp = found
			rfpId = &found.Id
		} else if !errors.Is(err, repo_errors.ErrNotFound) {
			return nil, err
		}
	}

	vendorId := input.FromEmail
	vendor, err := s.vendorRepo.GetVendorByEmail(ctx, input.FromEmail)
	if err == nil {
		vendorId = vendor.Id.String()
	} else if !errors.Is(err, repo_errors.ErrNotFound) {
		return nil, err
	}

	fields, err := s.extractor.ExtractProposal(ctx, input.Body)
	if err != nil {
		fields, _ = s.fallback.ExtractProposal(ctx, input.Body)
	}

	createInput := &entity.CreateProposalInput{
		RfpId:          rfpId,
		VendorId:       vendorId,
		RawText:        input.Body,
		TotalPrice:     fields.TotalPrice,
		DeliveryDays:   fields.DeliveryDays,
		WarrantyMonths: fields.WarrantyMonths,
		Notes:          fields.Notes,
	}
	if rfp != nil {
		score := extract.Score(fields, rfp)
		createInput.Score = &score
	}

	id, err := s.proposalRepo.CreateProposal(ctx, createInput)
	if err != nil {
		return nil, err
	}

	proposal, err := s.proposalRepo.GetProposalById(ctx, id.String())
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrProposalNotFound
		}

		return nil, err
	}

	return mapProposal(proposal), nil
}

func (s *ProposalService) GetProposalsForRfp(ctx context.Context, rfpId string) ([]entity.ProposalOutputModel, error) {
	if _, err := s.rfpRepo.GetRfpById(ctx, rfpId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrRfpNotFound
		}

		return nil, err
	}

	proposals, err := s.proposalRepo.GetProposalsByRfpId(ctx, rfpId)
	if err != nil {
		return nil, err
	}

	return mapProposals(proposals), nil
}

// CompareProposals scores any unscored proposals for the RFP, persists the
// new scores and picks the best one. Ties keep the earliest proposal: the
// repo returns creation order and only a strictly greater score displaces
// the current best.
func (s *ProposalService) CompareProposals(ctx context.Context, rfpId string) (*entity.ComparisonOutputModel, error) {
	rfp, err := s.rfpRepo.GetRfpById(ctx, rfpId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrRfpNotFound
		}

		return nil, err
	}

	proposals, err := s.proposalRepo.GetProposalsByRfpId(ctx, rfpId)
	if err != nil {
		return nil, err
	}

	for i := range proposals {
		if proposals[i].Score != nil {
			continue
		}

		score := extract.Score(proposalFields(&proposals[i]), rfp)
		if err := s.proposalRepo.UpdateProposalScoreById(ctx, proposals[i].Id.String(), score); err != nil {
			return nil, err
		}
		proposals[i].Score = &score
	}

	output := &entity.ComparisonOutputModel{Proposals: mapProposals(proposals)}

	var best *entity.Proposal
	for i := range proposals {
		if best == nil || *proposals[i].Score > *best.Score {
			best = &proposals[i]
		}
	}
	if best != nil {
		output.Best = mapProposal(best)
	}

	return output, nil
}

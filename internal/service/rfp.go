package service

import (
	"context"
	"errors"
	"fmt"
	"rfp-management-api/internal/entity"
	"rfp-management-api/internal/extract"
	"rfp-management-api/internal/repo"
	"rfp-management-api/internal/repo/repo_errors"
)

type RfpService struct {
	rfpRepo    repo.Rfp
	vendorRepo repo.Vendor
	outboxRepo repo.Outbox
	extractor  extract.Extractor
	fallback   *extract.PatternExtractor
}

func NewRfpService(repos *repo.Repositories, extractor extract.Extractor) *RfpService {
	return &RfpService{
		rfpRepo:    repos.Rfp,
		vendorRepo: repos.Vendor,
		outboxRepo: repos.Outbox,
		extractor:  extractor,
		fallback:   extract.NewPatternExtractor(),
	}
}

func (s *RfpService) CreateRfp(ctx context.Context, text string) (*entity.RfpOutputModel, error) {
	fields, err := s.extractor.ExtractRFP(ctx, text)
	if err != nil {
		// The deterministic extractor is the safe default, it never fails.
		fields, _ = s.fallback.ExtractRFP(ctx, text)
	}

	input := &entity.CreateRfpInput{
		Title:          fields.Title,
		Description:    fields.Description,
		Items:          fields.Items,
		Budget:         fields.Budget,
		DeliveryDays:   fields.DeliveryDays,
		PaymentTerms:   fields.PaymentTerms,
		WarrantyMonths: fields.WarrantyMonths,
	}

	id, err := s.rfpRepo.CreateRfp(ctx, input)
	if err != nil {
		return nil, err
	}

	rfp, err := s.rfpRepo.GetRfpById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapRfp(rfp), nil
}

func (s *RfpService) GetRfpById(ctx context.Context, rfpId string) (*entity.RfpOutputModel, error) {
	rfp, err := s.rfpRepo.GetRfpById(ctx, rfpId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrRfpNotFound
		}

		return nil, err
	}

	return mapRfp(rfp), nil
}

func (s *RfpService) GetRfps(ctx context.Context, pg *entity.PaginationInput) ([]entity.RfpOutputModel, error) {
	rfps, err := s.rfpRepo.GetRfps(ctx, pg)
	if err != nil {
		return nil, err
	}

	return mapRfps(rfps), nil
}

// SendRfp records one outbox message per existing vendor. Unknown vendor ids
// are skipped, not errors, but a request that matches no vendor at all is.
func (s *RfpService) SendRfp(ctx context.Context, rfpId string, vendorIds []string) (int, error) {
	rfp, err := s.rfpRepo.GetRfpById(ctx, rfpId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return 0, ErrRfpNotFound
		}

		return 0, err
	}

	subject := fmt.Sprintf("RFP: %s [RFPID:%s]", rfp.Title, rfp.Id.String())

	sent := 0
	for _, vendorId := range vendorIds {
		vendor, err := s.vendorRepo.GetVendorById(ctx, vendorId)
		if err != nil {
			if errors.Is(err, repo_errors.ErrNotFound) {
				continue
			}

			return sent, err
		}

		input := &entity.CreateOutboxMessageInput{
			RfpId:       rfp.Id,
			VendorId:    vendor.Id,
			VendorEmail: vendor.Email,
			Subject:     subject,
			Body:        rfp.Description,
		}
		if _, err := s.outboxRepo.CreateOutboxMessage(ctx, input); err != nil {
			return sent, err
		}
		sent++
	}

	if sent == 0 && len(vendorIds) > 0 {
		return 0, ErrNoVendorsMatched
	}

	return sent, nil
}

func (s *RfpService) GetOutboxByRfpId(ctx context.Context, rfpId string) ([]entity.OutboxMessage, error) {
	if _, err := s.rfpRepo.GetRfpById(ctx, rfpId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrRfpNotFound
		}

		return nil, err
	}

	return s.outboxRepo.GetOutboxMessagesByRfpId(ctx, rfpId)
}

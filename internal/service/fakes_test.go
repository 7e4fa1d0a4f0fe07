package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"rfp-management-api/internal/entity"
	"rfp-management-api/internal/extract"
	"rfp-management-api/internal/repo"
	"rfp-management-api/internal/repo/repo_errors"
)

type fakeRfpRepo struct {
	rfps map[string]*entity.Rfp
}

func (f *fakeRfpRepo) CreateRfp(ctx context.Context, input *entity.CreateRfpInput) (uuid.UUID, error) {
	id := uuid.New()
	f.rfps[id.String()] = &entity.Rfp{
		Id:             id,
		Title:          input.Title,
		Description:    input.Description,
		Items:          input.Items,
		Budget:         input.Budget,
		DeliveryDays:   input.DeliveryDays,
		PaymentTerms:   input.PaymentTerms,
		WarrantyMonths: input.WarrantyMonths,
		CreatedAt:      time.Now().Format(time.RFC3339),
	}

	return id, nil
}

func (f *fakeRfpRepo) GetRfpById(ctx context.Context, id string) (*entity.Rfp, error) {
	rfp, ok := f.rfps[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return rfp, nil
}

func (f *fakeRfpRepo) GetRfps(ctx context.Context, pg *entity.PaginationInput) ([]entity.Rfp, error) {
	rfps := make([]entity.Rfp, 0)
	for _, rfp := range f.rfps {
		rfps = append(rfps, *rfp)
	}

	return rfps, nil
}

type fakeVendorRepo struct {
	vendors []entity.Vendor
}

func (f *fakeVendorRepo) CreateVendor(ctx context.Context, input *entity.CreateVendorInput) (uuid.UUID, error) {
	id := uuid.New()
	f.vendors = append(f.vendors, entity.Vendor{
		Id:          id,
		Name:        input.Name,
		Email:       strings.ToLower(input.Email),
		ContactName: input.ContactName,
		CreatedAt:   time.Now().Format(time.RFC3339),
	})

	return id, nil
}

func (f *fakeVendorRepo) GetVendorById(ctx context.Context, id string) (*entity.Vendor, error) {
	for i := range f.vendors {
		if f.vendors[i].Id.String() == id {
			return &f.vendors[i], nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (f *fakeVendorRepo) GetVendorByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	for i := range f.vendors {
		if f.vendors[i].Email == strings.ToLower(email) {
			return &f.vendors[i], nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (f *fakeVendorRepo) GetVendors(ctx context.Context, pg *entity.PaginationInput) ([]entity.Vendor, error) {
	return f.vendors, nil
}

type fakeProposalRepo struct {
	proposals []entity.Proposal
}

func (f *fakeProposalRepo) CreateProposal(ctx context.Context, input *entity.CreateProposalInput) (uuid.UUID, error) {
	id := uuid.New()
	f.proposals = append(f.proposals, entity.Proposal{
		Id:             id,
		RfpId:          input.RfpId,
		VendorId:       input.VendorId,
		RawText:        input.RawText,
		TotalPrice:     input.TotalPrice,
		DeliveryDays:   input.DeliveryDays,
		WarrantyMonths: input.WarrantyMonths,
		Notes:          input.Notes,
		Score:          input.Score,
		CreatedAt:      time.Now().Format(time.RFC3339),
	})

	return id, nil
}

func (f *fakeProposalRepo) GetProposalById(ctx context.Context, id string) (*entity.Proposal, error) {
	for i := range f.proposals {
		if f.proposals[i].Id.String() == id {
			return &f.proposals[i], nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (f *fakeProposalRepo) GetProposalsByRfpId(ctx context.Context, rfpId string) ([]entity.Proposal, error) {
	proposals := make([]entity.Proposal, 0)
	for _, proposal := range f.proposals {
		if proposal.RfpId != nil && proposal.RfpId.String() == rfpId {
			proposals = append(proposals, proposal)
		}
	}

	return proposals, nil
}

func (f *fakeProposalRepo) UpdateProposalScoreById(ctx context.Context, id string, score float64) error {
	for i := range f.proposals {
		if f.proposals[i].Id.String() == id {
			s := score
			f.proposals[i].Score = &s
			return nil
		}
	}

	return repo_errors.ErrNotFound
}

type fakeOutboxRepo struct {
	messages []entity.OutboxMessage
}

func (f *fakeOutboxRepo) CreateOutboxMessage(ctx context.Context, input *entity.CreateOutboxMessageInput) (uuid.UUID, error) {
	id := uuid.New()
	f.messages = append(f.messages, entity.OutboxMessage{
		Id:          id,
		RfpId:       input.RfpId,
		VendorId:    input.VendorId,
		VendorEmail: input.VendorEmail,
		Subject:     input.Subject,
		Body:        input.Body,
		CreatedAt:   time.Now().Format(time.RFC3339),
	})

	return id, nil
}

func (f *fakeOutboxRepo) GetOutboxMessagesByRfpId(ctx context.Context, rfpId string) ([]entity.OutboxMessage, error) {
	messages := make([]entity.OutboxMessage, 0)
	for _, message := range f.messages {
		if message.RfpId.String() == rfpId {
			messages = append(messages, message)
		}
	}

	return messages, nil
}

type fakeDiagnosticsRepo struct{}

func (f *fakeDiagnosticsRepo) Ping() error { return nil }

func newFakeRepositories() *repo.Repositories {
	return &repo.Repositories{
		Diagnostics: &fakeDiagnosticsRepo{},
		Rfp:         &fakeRfpRepo{rfps: make(map[string]*entity.Rfp)},
		Vendor:      &fakeVendorRepo{vendors: make([]entity.Vendor, 0)},
		Proposal:    &fakeProposalRepo{proposals: make([]entity.Proposal, 0)},
		Outbox:      &fakeOutboxRepo{messages: make([]entity.OutboxMessage, 0)},
	}
}

// failingExtractor stands in for an unreachable LLM extractor.
type failingExtractor struct{}

func (f *failingExtractor) ExtractRFP(ctx context.Context, text string) (*extract.RFPFields, error) {
	return nil, errors.New("extraction backend unavailable")
}

func (f *failingExtractor) ExtractProposal(ctx context.Context, text string) (*extract.ProposalFields, error) {
	return nil, errors.New("extraction backend unavailable")
}

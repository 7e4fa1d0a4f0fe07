package repo

import (
	"context"
	"rfp-management-api/internal/entity"
	"rfp-management-api/internal/repo/pgdb"
	"rfp-management-api/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping() error
}

type Rfp interface {
	CreateRfp(ctx context.Context, input *entity.CreateRfpInput) (uuid.UUID, error)
	GetRfpById(ctx context.Context, id string) (*entity.Rfp, error)
	GetRfps(ctx context.Context, pg *entity.PaginationInput) ([]entity.Rfp, error)
}

type Vendor interface {
	CreateVendor(ctx context.Context, input *entity.CreateVendorInput) (uuid.UUID, error)
	GetVendorById(ctx context.Context, id string) (*entity.Vendor, error)
	GetVendorByEmail(ctx context.Context, email string) (*entity.Vendor, error)
	GetVendors(ctx context.Context, pg *entity.PaginationInput) ([]entity.Vendor, error)
}

type Proposal interface {
	CreateProposal(ctx context.Context, input *entity.CreateProposalInput) (uuid.UUID, error)
	GetProposalById(ctx context.Context, id string) (*entity.Proposal, error)
	GetProposalsByRfpId(ctx context.Context, rfpId string) ([]entity.Proposal, error)
	UpdateProposalScoreById(ctx context.Context, id string, score float64) error
}

type Outbox interface {
	CreateOutboxMessage(ctx context.Context, input *entity.CreateOutboxMessageInput) (uuid.UUID, error)
	GetOutboxMessagesByRfpId(ctx context.Context, rfpId string) ([]entity.OutboxMessage, error)
}

type Repositories struct {
	Diagnostics
	Rfp
	Vendor
	Proposal
	Outbox
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		Rfp:         pgdb.NewRfpRepo(p),
		Vendor:      pgdb.NewVendorRepo(p),
		Proposal:    pgdb.NewProposalRepo(p),
		Outbox:      pgdb.NewOutboxRepo(p),
	}
}

package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"rfp-management-api/internal/entity"
	"rfp-management-api/internal/repo/repo_errors"
	"rfp-management-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type ProposalRepo struct {
	*postgres.Postgres
}

func NewProposalRepo(pgdb *postgres.Postgres) *ProposalRepo {
	return &ProposalRepo{pgdb}
}

func (r *ProposalRepo) CreateProposal(ctx context.Context, input *entity.CreateProposalInput) (uuid.UUID, error) {
	createProposalSql, args, _ := r.SqlBuilder.
		Insert("proposal").
		Columns("rfp_id", "vendor_id", "raw_text", "total_price", "delivery_days", "warranty_months", "notes", "score").
		Values(input.RfpId, input.VendorId, input.RawText, input.TotalPrice, input.DeliveryDays, input.WarrantyMonths, input.Notes, input.Score).
		Suffix("RETURNING id").
		ToSql()

	var proposalId uuid.UUID
	err := r.Database.QueryRow(createProposalSql, args...).Scan(&proposalId)
	if err != nil {
		return uuid.Nil, err
	}

	return proposalId, nil
}

func (r *ProposalRepo) GetProposalById(ctx context.Context, id string) (*entity.Proposal, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getProposalSql, args, _ := r.SqlBuilder.
		Select("created_at", "id", "rfp_id", "vendor_id", "raw_text", "total_price", "delivery_days", "warranty_months", "notes", "score").
		From("proposal").
		Where("id = ?", uuidForm).
		ToSql()

	proposal, err := scanProposal(r.Database.QueryRow(getProposalSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return proposal, nil
}

// Ordered by creation time so tie-breaks on score stay deterministic.
func (r *ProposalRepo) GetProposalsByRfpId(ctx context.Context, rfpId string) ([]entity.Proposal, error) {
	uuidForm, err := uuid.Parse(rfpId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getProposalsSql, args, _ := r.SqlBuilder.
		Select("created_at", "id", "rfp_id", "vendor_id", "raw_text", "total_price", "delivery_days", "warranty_months", "notes", "score").
		From("proposal").
		Where("rfp_id = ?", uuidForm).
		OrderBy("created_at ASC").
		ToSql()

	rows, err := r.Database.Query(getProposalsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	proposals := make([]entity.Proposal, 0)
	for rows.Next() {
		proposal, err := scanProposal(rows)
		if err != nil {
			return proposals, err
		}
		proposals = append(proposals, *proposal)
	}
	if err = rows.Err(); err != nil {
		return proposals, err
	}

	return proposals, nil
}

func (r *ProposalRepo) UpdateProposalScoreById(ctx context.Context, id string, score float64) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	updateScoreSql, args, _ := r.SqlBuilder.
		Update("proposal").
		Set("score", score).
		Where("id = ?", uuidForm).
		ToSql()

	_, err = r.Database.Exec(updateScoreSql, args...)
	if err != nil {
		return err
	}

	return nil
}

func scanProposal(row rowScanner) (*entity.Proposal, error) {
	var proposal entity.Proposal
	var createdAt time.Time
	var rfpId uuid.NullUUID
	var totalPrice, score sql.NullFloat64
	var deliveryDays, warrantyMonths sql.NullInt64

	err := row.Scan(&createdAt, &proposal.Id, &rfpId, &proposal.VendorId, &proposal.RawText,
		&totalPrice, &deliveryDays, &warrantyMonths, &proposal.Notes, &score)
	if err != nil {
		return nil, err
	}

	proposal.CreatedAt = createdAt.Format(time.RFC3339)
	if rfpId.Valid {
		proposal.RfpId = &rfpId.UUID
	}
	if totalPrice.Valid {
		proposal.TotalPrice = &totalPrice.Float64
	}
	if deliveryDays.Valid {
		d := int(deliveryDays.Int64)
		proposal.DeliveryDays = &d
	}
	if warrantyMonths.Valid {
		w := int(warrantyMonths.Int64)
		proposal.WarrantyMonths = &w
	}
	if score.Valid {
		proposal.Score = &score.Float64
	}

	return &proposal, nil
}

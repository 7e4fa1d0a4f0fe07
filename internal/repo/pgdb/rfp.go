package pgdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"rfp-management-api/internal/entity"
	"rfp-management-api/internal/repo/repo_errors"
	"rfp-management-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type RfpRepo struct {
	*postgres.Postgres
}

func NewRfpRepo(pgdb *postgres.Postgres) *RfpRepo {
	return &RfpRepo{pgdb}
}

func (r *RfpRepo) CreateRfp(ctx context.Context, input *entity.CreateRfpInput) (uuid.UUID, error) {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}

	createRfpSql, args, _ := r.SqlBuilder.
		Insert("rfp").
		Columns("title", "description", "budget", "delivery_days", "payment_terms", "warranty_months").
		Values(input.Title, input.Description, input.Budget, input.DeliveryDays, input.PaymentTerms, input.WarrantyMonths).
		Suffix("RETURNING id").
		RunWith(tx).
		ToSql()

	var rfpId uuid.UUID
	err = tx.QueryRow(createRfpSql, args...).Scan(&rfpId)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, err
	}

	for position, item := range input.Items {
		specs, err := json.Marshal(item.Specs)
		if err != nil {
			if e := tx.Rollback(); e != nil {
				return uuid.Nil, e
			}

			return uuid.Nil, err
		}

		createItemSql, args, _ := r.SqlBuilder.
			Insert("rfp_item").
			Columns("rfp_id", "position", "name", "qty", "specs").
			Values(rfpId, position, item.Name, item.Qty, specs).
			RunWith(tx).
			ToSql()

		if _, err = tx.Exec(createItemSql, args...); err != nil {
			if e := tx.Rollback(); e != nil {
				return uuid.Nil, e
			}

			return uuid.Nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	return rfpId, nil
}

func (r *RfpRepo) GetRfpById(ctx context.Context, id string) (*entity.Rfp, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getRfpSql, args, _ := r.SqlBuilder.
		Select("created_at", "id", "title", "description", "budget", "delivery_days", "payment_terms", "warranty_months").
		From("rfp").
		Where("id = ?", uuidForm).
		ToSql()

	row := r.Database.QueryRow(getRfpSql, args...)
	rfp, err := scanRfp(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	rfp.Items, err = r.getItemsByRfpId(ctx, rfp.Id)
	if err != nil {
		return nil, err
	}

	return rfp, nil
}

func (r *RfpRepo) GetRfps(ctx context.Context, pg *entity.PaginationInput) ([]entity.Rfp, error) {
	getRfpsSql, args, _ := r.SqlBuilder.
		Select("created_at", "id", "title", "description", "budget", "delivery_days", "payment_terms", "warranty_months").
		From("rfp").
		OrderBy("created_at ASC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.Query(getRfpsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rfps := make([]entity.Rfp, 0)
	for rows.Next() {
		rfp, err := scanRfp(rows)
		if err != nil {
			return rfps, err
		}
		rfps = append(rfps, *rfp)
	}
	if err = rows.Err(); err != nil {
		return rfps, err
	}

	for i := range rfps {
		rfps[i].Items, err = r.getItemsByRfpId(ctx, rfps[i].Id)
		if err != nil {
			return rfps, err
		}
	}

	return rfps, nil
}

func (r *RfpRepo) getItemsByRfpId(ctx context.Context, rfpId uuid.UUID) ([]entity.Item, error) {
	getItemsSql, args, _ := r.SqlBuilder.
		Select("name", "qty", "specs").
		From("rfp_item").
		Where("rfp_id = ?", rfpId).
		OrderBy("position ASC").
		ToSql()

	rows, err := r.Database.Query(getItemsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.Item, 0)
	for rows.Next() {
		var item entity.Item
		var qty sql.NullInt64
		var specs []byte
		if err := rows.Scan(&item.Name, &qty, &specs); err != nil {
			return items, err
		}
		if qty.Valid {
			q := int(qty.Int64)
			item.Qty = &q
		}
		if len(specs) > 0 {
			if err := json.Unmarshal(specs, &item.Specs); err != nil {
				return items, err
			}
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return items, err
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRfp(row rowScanner) (*entity.Rfp, error) {
	var rfp entity.Rfp
	var createdAt time.Time
	var budget sql.NullFloat64
	var deliveryDays, warrantyMonths sql.NullInt64
	var paymentTerms sql.NullString

	err := row.Scan(&createdAt, &rfp.Id, &rfp.Title, &rfp.Description,
		&budget, &deliveryDays, &paymentTerms, &warrantyMonths)
	if err != nil {
		return nil, err
	}

	rfp.CreatedAt = createdAt.Format(time.RFC3339)
	if budget.Valid {
		rfp.Budget = &budget.Float64
	}
	if deliveryDays.Valid {
		d := int(deliveryDays.Int64)
		rfp.DeliveryDays = &d
	}
	if paymentTerms.Valid {
		rfp.PaymentTerms = &paymentTerms.String
	}
	if warrantyMonths.Valid {
		w := int(warrantyMonths.Int64)
		rfp.WarrantyMonths = &w
	}

	return &rfp, nil
}

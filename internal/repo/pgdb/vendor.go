package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"rfp-management-api/internal/entity"
	"rfp-management-api/internal/repo/repo_errors"
	"rfp-management-api/pkg/postgres"
	"strings"
	"time"

	"github.com/google/uuid"
)

type VendorRepo struct {
	*postgres.Postgres
}

func NewVendorRepo(pgdb *postgres.Postgres) *VendorRepo {
	return &VendorRepo{pgdb}
}

func (r *VendorRepo) CreateVendor(ctx context.Context, input *entity.CreateVendorInput) (uuid.UUID, error) {
	createVendorSql, args, _ := r.SqlBuilder.
		Insert("vendor").
		Columns("name", "email", "contact_name").
		Values(input.Name, strings.ToLower(input.Email), input.ContactName).
		Suffix("RETURNING id").
		ToSql()

	var vendorId uuid.UUID
	err := r.Database.QueryRow(createVendorSql, args...).Scan(&vendorId)
	if err != nil {
		return uuid.Nil, err
	}

	return vendorId, nil
}

func (r *VendorRepo) GetVendorById(ctx context.Context, id string) (*entity.Vendor, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getVendorSql, args, _ := r.SqlBuilder.
		Select("created_at", "id", "name", "email", "contact_name").
		From("vendor").
		Where("id = ?", uuidForm).
		ToSql()

	return r.scanVendorRow(r.Database.QueryRow(getVendorSql, args...))
}

func (r *VendorRepo) GetVendorByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	getVendorSql, args, _ := r.SqlBuilder.
		Select("created_at", "id", "name", "email", "contact_name").
		From("vendor").
		Where("email = ?", strings.ToLower(email)).
		ToSql()

	return r.scanVendorRow(r.Database.QueryRow(getVendorSql, args...))
}

func (r *VendorRepo) GetVendors(ctx context.Context, pg *entity.PaginationInput) ([]entity.Vendor, error) {
	getVendorsSql, args, _ := r.SqlBuilder.
		Select("created_at", "id", "name", "email", "contact_name").
		From("vendor").
		OrderBy("name ASC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.Query(getVendorsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := make([]entity.Vendor, 0)
	for rows.Next() {
		var vendor entity.Vendor
		var createdAt time.Time
		if err := rows.Scan(&createdAt, &vendor.Id, &vendor.Name, &vendor.Email, &vendor.ContactName); err != nil {
			return vendors, err
		}
		vendor.CreatedAt = createdAt.Format(time.RFC3339)
		vendors = append(vendors, vendor)
	}
	if err = rows.Err(); err != nil {
		return vendors, err
	}

	return vendors, nil
}

func (r *VendorRepo) scanVendorRow(row *sql.Row) (*entity.Vendor, error) {
	var vendor entity.Vendor
	var createdAt time.Time
	err := row.Scan(&createdAt, &vendor.Id, &vendor.Name, &vendor.Email, &vendor.ContactName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	vendor.CreatedAt = createdAt.Format(time.RFC3339)

	return &vendor, nil
}

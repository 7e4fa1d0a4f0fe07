package pgdb

import (
	"context"
	"rfp-management-api/internal/entity"
	"rfp-management-api/internal/repo/repo_errors"
	"rfp-management-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type OutboxRepo struct {
	*postgres.Postgres
}

func NewOutboxRepo(pgdb *postgres.Postgres) *OutboxRepo {
	return &OutboxRepo{pgdb}
}

func (r *OutboxRepo) CreateOutboxMessage(ctx context.Context, input *entity.CreateOutboxMessageInput) (uuid.UUID, error) {
	createMessageSql, args, _ := r.SqlBuilder.
		Insert("outbox").
		Columns("rfp_id", "vendor_id", "vendor_email", "subject", "body").
		Values(input.RfpId, input.VendorId, input.VendorEmail, input.Subject, input.Body).
		Suffix("RETURNING id").
		ToSql()

	var messageId uuid.UUID
	err := r.Database.QueryRow(createMessageSql, args...).Scan(&messageId)
	if err != nil {
		return uuid.Nil, err
	}

	return messageId, nil
}

func (r *OutboxRepo) GetOutboxMessagesByRfpId(ctx context.Context, rfpId string) ([]entity.OutboxMessage, error) {
	uuidForm, err := uuid.Parse(rfpId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getMessagesSql, args, _ := r.SqlBuilder.
		Select("created_at", "id", "rfp_id", "vendor_id", "vendor_email", "subject", "body").
		From("outbox").
		Where("rfp_id = ?", uuidForm).
		OrderBy("created_at ASC").
		ToSql()

	rows, err := r.Database.Query(getMessagesSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]entity.OutboxMessage, 0)
	for rows.Next() {
		var message entity.OutboxMessage
		var createdAt time.Time
		if err := rows.Scan(&createdAt, &message.Id, &message.RfpId, &message.VendorId,
			&message.VendorEmail, &message.Subject, &message.Body); err != nil {
			return messages, err
		}
		message.CreatedAt = createdAt.Format(time.RFC3339)
		messages = append(messages, message)
	}
	if err = rows.Err(); err != nil {
		return messages, err
	}

	return messages, nil
}

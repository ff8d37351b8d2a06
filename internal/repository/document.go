package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pharmahub/backend/internal/domain"
)

type documentRepository struct {
	db *sqlx.DB
}

func newDocumentRepository(db *sqlx.DB) *documentRepository {
	return &documentRepository{
		db: db,
	}
}

func (r *documentRepository) Create(ctx context.Context, document *domain.UploadedDocument) error {
	const query = `
		INSERT INTO uploaded_document (id, endpoint, file_name, content_type, size, storage_path, url, created_at)
		VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		document.ID, document.Endpoint, document.FileName, document.ContentType,
		document.Size, document.StoragePath, document.URL, document.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("db insert uploaded document: %w", err)
	}
	return nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.UploadedDocument, error) {
	const query = `
		SELECT id, endpoint, file_name, content_type, size, storage_path, url, created_at
		FROM uploaded_document WHERE id = uuid_to_bin(?)
	`
	var document domain.UploadedDocument
	if err := r.db.GetContext(ctx, &document, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select uploaded document by id failed: %w", err)
	}
	return &document, nil
}

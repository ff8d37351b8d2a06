package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pharmahub/backend/internal/db"
	"github.com/pharmahub/backend/internal/domain"
)

// uniqueSubdomainKey is the name of the unique index on tenant.subdomain.
const uniqueSubdomainKey = "uq_tenant_subdomain"

type tenantRepository struct {
	db *sqlx.DB
}

func newTenantRepository(db *sqlx.DB) *tenantRepository {
	return &tenantRepository{
		db: db,
	}
}

func (r *tenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	const query = `
	INSERT INTO tenant (
		id, owner_id, business_name, business_type, business_description, business_logo_url,
		business_license_number, subdomain, business_phone, business_email,
		province, district, commune, village, street_address,
		pharmacy_license_number, license_document_url, pharmacist_in_charge, pharmacist_license_number,
		operating_hours, services_offered, subscription_plan, license_status,
		terms_accepted_at, created_at, updated_at
	) VALUES (
		uuid_to_bin(:id), uuid_to_bin(:owner_id), :business_name, :business_type, :business_description, :business_logo_url,
		:business_license_number, :subdomain, :business_phone, :business_email,
		:province, :district, :commune, :village, :street_address,
		:pharmacy_license_number, :license_document_url, :pharmacist_in_charge, :pharmacist_license_number,
		:operating_hours, :services_offered, :subscription_plan, :license_status,
		:terms_accepted_at, :created_at, :updated_at
	)
	`

	if _, err := r.db.NamedExecContext(ctx, query, tenant); err != nil {
		return tenantInsertError(err)
	}
	return nil
}

// tenantInsertError maps a failed tenant insert to a domain error. A unique
// violation on the subdomain index means another signup won the race.
func tenantInsertError(err error) error {
	var mysqlError *mysql.MySQLError
	if errors.As(err, &mysqlError) && mysqlError.Number == db.DuplicateEntry {
		if strings.Contains(mysqlError.Message, uniqueSubdomainKey) {
			return domain.ErrSubdomainTaken
		}
		return domain.ErrDuplicateEntry
	}
	return fmt.Errorf("db insert tenant: %w", err)
}

func (r *tenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	const query = `
	SELECT id, owner_id, business_name, business_type, business_description, business_logo_url,
		business_license_number, subdomain, business_phone, business_email,
		province, district, commune, village, street_address,
		pharmacy_license_number, license_document_url, pharmacist_in_charge, pharmacist_license_number,
		operating_hours, services_offered, subscription_plan, license_status, license_checked_at,
		terms_accepted_at, created_at, updated_at
	FROM tenant WHERE id = uuid_to_bin(?)
	`
	var tenant domain.Tenant
	if err := r.db.GetContext(ctx, &tenant, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select tenant by id failed: %w", err)
	}
	return &tenant, nil
}

func (r *tenantRepository) SubdomainExists(ctx context.Context, subdomain string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM tenant WHERE subdomain = ?)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, subdomain); err != nil {
		return false, fmt.Errorf("check subdomain failed: %w", err)
	}
	return exists, nil
}

func (r *tenantRepository) UpdateLicenseStatus(ctx context.Context, id uuid.UUID, status domain.LicenseStatus, checkedAt time.Time) error {
	const query = `
	UPDATE tenant SET license_status = ?, license_checked_at = ?, updated_at = ? WHERE id = uuid_to_bin(?)
	`
	result, err := r.db.ExecContext(ctx, query, status, checkedAt, checkedAt, id)
	if err != nil {
		return fmt.Errorf("update tenant license status failed: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

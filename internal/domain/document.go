package domain

import (
	"time"

	"github.com/google/uuid"
)

type UploadEndpoint string

const (
	EndpointBusinessLogo    UploadEndpoint = "businessLogo"
	EndpointLicenseDocument UploadEndpoint = "licenseDocument"
)

type UploadedDocument struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Endpoint    UploadEndpoint `db:"endpoint" json:"endpoint"`
	FileName    string         `db:"file_name" json:"file_name"`
	ContentType string         `db:"content_type" json:"content_type"`
	Size        int64          `db:"size" json:"size"`
	StoragePath string         `db:"storage_path" json:"-"`
	URL         string         `db:"url" json:"url"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

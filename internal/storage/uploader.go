// Package storage keeps files uploaded during signup on local disk and
// records their metadata.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/pharmahub/backend/internal/config"
	"github.com/pharmahub/backend/internal/domain"
)

var (
	ErrUnknownEndpoint = errors.New("unknown upload endpoint")
	ErrFileTooLarge    = errors.New("file is too large")
	ErrUnsupportedType = errors.New("file type is not allowed")
	ErrEmptyFile       = errors.New("file is empty")
)

// File is an upload as received from the client.
type File struct {
	Name   string
	Reader io.Reader
}

type endpointRule struct {
	maxSize int64
	types   []string
}

// Documents stores upload metadata.
type Documents interface {
	Create(ctx context.Context, document *domain.UploadedDocument) error
}

type Uploader struct {
	dir       string
	publicURL string
	rules     map[domain.UploadEndpoint]endpointRule
	documents Documents
	now       func() time.Time
}

func NewUploader(cfg config.StorageConfig, documents Documents) *Uploader {
	return &Uploader{
		dir:       cfg.Dir,
		publicURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		rules: map[domain.UploadEndpoint]endpointRule{
			domain.EndpointBusinessLogo: {
				maxSize: cfg.MaxLogoSize,
				types:   []string{"image/png", "image/jpeg", "image/webp", "image/svg+xml"},
			},
			domain.EndpointLicenseDocument: {
				maxSize: cfg.MaxDocumentSize,
				types:   []string{"application/pdf", "image/png", "image/jpeg"},
			},
		},
		documents: documents,
		now:       time.Now,
	}
}

// Upload checks size and sniffed content type against the endpoint's rules,
// writes the file under dir/<endpoint>/ and returns its stored record.
func (u *Uploader) Upload(ctx context.Context, endpoint domain.UploadEndpoint, file File) (*domain.UploadedDocument, error) {
	rule, ok := u.rules[endpoint]
	if !ok {
		return nil, ErrUnknownEndpoint
	}

	data, err := io.ReadAll(io.LimitReader(file.Reader, rule.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload failed: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if int64(len(data)) > rule.maxSize {
		return nil, ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	if !allowed(mtype, rule.types) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mtype.String())
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate document id failed: %w", err)
	}

	name := id.String() + mtype.Extension()
	dir := filepath.Join(u.dir, string(endpoint))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir failed: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write upload failed: %w", err)
	}

	doc := &domain.UploadedDocument{
		ID:          id,
		Endpoint:    endpoint,
		FileName:    filepath.Base(file.Name),
		ContentType: mtype.String(),
		Size:        int64(len(data)),
		StoragePath: path,
		URL:         u.publicURL + "/" + string(endpoint) + "/" + name,
		CreatedAt:   u.now(),
	}
	if err := u.documents.Create(ctx, doc); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("store document metadata failed: %w", err)
	}
	return doc, nil
}

// Dir is the root directory uploads are written to.
func (u *Uploader) Dir() string {
	return u.dir
}

func allowed(mtype *mimetype.MIME, types []string) bool {
	for _, t := range types {
		if mtype.Is(t) {
			return true
		}
	}
	return false
}

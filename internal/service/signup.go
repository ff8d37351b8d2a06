package service

import (
	"context"
	"fmt"

	"github.com/pharmahub/backend/internal/domain"
	"github.com/pharmahub/backend/internal/repository"
	"github.com/pharmahub/backend/internal/storage"
	"github.com/pharmahub/backend/internal/wizard"
	"github.com/pharmahub/backend/pkg/validator"

	"github.com/google/uuid"
)

type sessionMetrics interface {
	SessionOpened()
}

// signupService exposes the in-memory wizard sessions to transports.
type signupService struct {
	registry *wizard.Registry
	uploader *storage.Uploader
	tenants  repository.Tenants
	metrics  sessionMetrics
}

func newSignupService(registry *wizard.Registry, uploader *storage.Uploader, tenants repository.Tenants, metrics sessionMetrics) *signupService {
	return &signupService{
		registry: registry,
		uploader: uploader,
		tenants:  tenants,
		metrics:  metrics,
	}
}

func (s *signupService) Registry() *wizard.Registry {
	return s.registry
}

func (s *signupService) Open(_ context.Context) (uuid.UUID, wizard.State, error) {
	id, c, err := s.registry.Open()
	if err != nil {
		return uuid.Nil, wizard.State{}, err
	}
	if s.metrics != nil {
		s.metrics.SessionOpened()
	}
	return id, c.State(), nil
}

func (s *signupService) State(id uuid.UUID) (wizard.State, error) {
	c, err := s.registry.Get(id)
	if err != nil {
		return wizard.State{}, err
	}
	return c.State(), nil
}

// SetFields applies the edits and always returns the resulting state, also
// when one of the values was rejected.
func (s *signupService) SetFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (wizard.State, error) {
	c, err := s.registry.Get(id)
	if err != nil {
		return wizard.State{}, err
	}
	err = c.SetFields(ctx, fields)
	return c.State(), err
}

func (s *signupService) Advance(id uuid.UUID) (wizard.State, error) {
	c, err := s.registry.Get(id)
	if err != nil {
		return wizard.State{}, err
	}
	err = c.Advance()
	return c.State(), err
}

func (s *signupService) Retreat(id uuid.UUID) (wizard.State, error) {
	c, err := s.registry.Get(id)
	if err != nil {
		return wizard.State{}, err
	}
	err = c.Retreat()
	return c.State(), err
}

func (s *signupService) Submit(ctx context.Context, id uuid.UUID) (wizard.State, error) {
	c, err := s.registry.Get(id)
	if err != nil {
		return wizard.State{}, err
	}
	_, err = c.Submit(ctx)
	return c.State(), err
}

// Upload stores the file and attaches its URL to the field behind endpoint.
// The storage call runs in its own goroutine and is awaited through the
// controller so a failure lands on that field only.
func (s *signupService) Upload(ctx context.Context, id uuid.UUID, endpoint domain.UploadEndpoint, file storage.File) (wizard.State, error) {
	field, err := uploadField(endpoint)
	if err != nil {
		return wizard.State{}, err
	}
	c, err := s.registry.Get(id)
	if err != nil {
		return wizard.State{}, err
	}

	pending := make(chan wizard.UploadResult, 1)
	go func() {
		doc, err := s.uploader.Upload(ctx, endpoint, file)
		if err != nil {
			pending <- wizard.UploadResult{Err: err}
			return
		}
		pending <- wizard.UploadResult{URL: doc.URL}
	}()

	err = c.AttachUpload(ctx, field, pending)
	return c.State(), err
}

func uploadField(endpoint domain.UploadEndpoint) (string, error) {
	switch endpoint {
	case domain.EndpointBusinessLogo:
		return wizard.FieldBusinessLogoURL, nil
	case domain.EndpointLicenseDocument:
		return wizard.FieldLicenseDocumentURL, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownUploadEndpoint, endpoint)
}

func (s *signupService) Discard(id uuid.UUID) {
	s.registry.Discard(id)
}

// CheckSubdomain derives a slug from name when it is not already one and
// reports whether a tenant holds it.
func (s *signupService) CheckSubdomain(ctx context.Context, name string) (*SubdomainCheck, error) {
	sub := name
	if !validator.IsSubdomain(sub) {
		sub = wizard.DeriveSubdomain(name)
	}

	res := &SubdomainCheck{Subdomain: sub, Valid: validator.IsSubdomain(sub)}
	if !res.Valid {
		return res, nil
	}

	exists, err := s.tenants.SubdomainExists(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("check subdomain failed: %w", err)
	}
	res.Available = !exists
	return res, nil
}

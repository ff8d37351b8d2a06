package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/pharmahub/backend/internal/domain"
)

var (
	ErrSubmitting      = errors.New("submission in progress")
	ErrCompleted       = errors.New("registration already completed")
	ErrNotTerminalStep = errors.New("submit is only allowed from the last step")
	ErrUnknownField    = errors.New("unknown field")
	ErrAddressLookup   = errors.New("address lookup failed")
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusSubmitting Status = "submitting"
	StatusComplete   Status = "complete"
)

// ValueError rejects a value before it reaches the form.
type ValueError struct {
	Field   string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Submitter creates the remote account. It is called at most once per
// successful Submit.
type Submitter interface {
	CreateAccount(ctx context.Context, form domain.RegistrationForm) (*domain.UserIdentity, error)
}

// AddressBook provides the option lists behind the address cascade.
type AddressBook interface {
	Provinces(ctx context.Context) ([]domain.AddressOption, error)
	Districts(ctx context.Context, province string) ([]domain.AddressOption, error)
	Communes(ctx context.Context, province, district string) ([]domain.AddressOption, error)
	Villages(ctx context.Context, province, district, commune string) ([]domain.AddressOption, error)
}

// Observer is notified of wizard transitions.
type Observer interface {
	StepValidated(step StepID, passed bool)
	SubmissionFinished(err error)
}

type nopObserver struct{}

func (nopObserver) StepValidated(StepID, bool) {}
func (nopObserver) SubmissionFinished(error)   {}

// SubmitFailure is the page level error left behind by a failed submission.
type SubmitFailure struct {
	Reason  domain.AccountCreationReason `json:"reason"`
	Field   string                       `json:"field,omitempty"`
	Message string                       `json:"message"`
}

// State is a read only view of the controller.
type State struct {
	StepIndex   int                     `json:"stepIndex"`
	Step        StepID                  `json:"step"`
	Status      Status                  `json:"status"`
	Form        domain.RegistrationForm `json:"form"`
	Errors      FieldErrors             `json:"errors"`
	SubmitError *SubmitFailure          `json:"submitError,omitempty"`
	Identity    *domain.UserIdentity    `json:"identity,omitempty"`
	Strength    Strength                `json:"passwordStrength"`
}

// Controller owns a RegistrationForm and is the only writer to it.
type Controller struct {
	mu sync.Mutex

	form            domain.RegistrationForm
	step            int
	status          Status
	subdomainManual bool
	errors          FieldErrors
	submitErr       *SubmitFailure
	identity        *domain.UserIdentity

	rules     *Rules
	submitter Submitter
	addresses AddressBook
	observer  Observer
}

type Option func(*Controller)

func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observer = o
		}
	}
}

func WithRules(r *Rules) Option {
	return func(c *Controller) {
		if r != nil {
			c.rules = r
		}
	}
}

func NewController(submitter Submitter, addresses AddressBook, opts ...Option) *Controller {
	c := &Controller{
		form:      domain.NewRegistrationForm(),
		status:    StatusInProgress,
		errors:    FieldErrors{},
		submitter: submitter,
		addresses: addresses,
		observer:  nopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rules == nil {
		c.rules = NewRules()
	}
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	errs := make(FieldErrors, len(c.errors))
	errs.merge(c.errors)

	st := State{
		StepIndex: c.step,
		Step:      stepAt(c.step).ID,
		Status:    c.status,
		Form:      c.form.Redacted(),
		Errors:    errs,
		Identity:  c.identity,
		Strength:  PasswordStrength(c.form.Password),
	}
	if c.submitErr != nil {
		failure := *c.submitErr
		st.SubmitError = &failure
	}
	return st
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Snapshot returns a deep copy of the form including secrets.
func (c *Controller) Snapshot() domain.RegistrationForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Clone()
}

func (c *Controller) writable() error {
	switch c.status {
	case StatusSubmitting:
		return ErrSubmitting
	case StatusComplete:
		return ErrCompleted
	}
	return nil
}

// SetField assigns one field and applies dependent derivations before
// returning.
func (c *Controller) SetField(ctx context.Context, path string, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.writable(); err != nil {
		return err
	}
	return c.setLocked(ctx, path, value)
}

// SetFields applies a batch of edits in flow order so that derived values
// and cascades settle the same way as one-by-one edits. It stops at the
// first rejected value.
func (c *Controller) SetFields(ctx context.Context, values map[string]interface{}) error {
	paths := make([]string, 0, len(values))
	for p := range values {
		paths = append(paths, p)
	}
	sort.SliceStable(paths, func(i, j int) bool {
		return rank(paths[i]) < rank(paths[j])
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.writable(); err != nil {
		return err
	}
	for _, p := range paths {
		if err := c.setLocked(ctx, p, values[p]); err != nil {
			return err
		}
	}
	return nil
}

func rank(path string) int {
	if i, ok := fieldOrder[path]; ok {
		return i
	}
	if strings.HasPrefix(path, FieldOperatingHours+".") {
		return fieldOrder[FieldOperatingHours]
	}
	return len(fieldOrder)
}

func (c *Controller) setLocked(ctx context.Context, path string, value interface{}) error {
	f := &c.form

	switch path {
	case FieldPassword, FieldConfirmPassword:
		s, err := asString(path, value)
		if err != nil {
			return err
		}
		if path == FieldPassword {
			f.Password = s
		} else {
			f.ConfirmPassword = s
		}
		if f.ConfirmPassword != "" && f.ConfirmPassword == f.Password {
			delete(c.errors, FieldConfirmPassword)
		}

	case FieldBusinessName:
		s, err := asText(path, value)
		if err != nil {
			return err
		}
		f.BusinessName = s
		if !c.subdomainManual {
			f.Subdomain = DeriveSubdomain(s)
			delete(c.errors, FieldSubdomain)
		}

	case FieldSubdomain:
		s, err := asText(path, value)
		if err != nil {
			return err
		}
		f.Subdomain = strings.ToLower(s)
		c.subdomainManual = f.Subdomain != ""

	case FieldBusinessType:
		s, err := asText(path, value)
		if err != nil {
			return err
		}
		f.BusinessType = domain.BusinessType(s)

	case FieldSubscriptionPlan:
		s, err := asText(path, value)
		if err != nil {
			return err
		}
		f.SubscriptionPlan = domain.SubscriptionPlan(s)

	case FieldAcceptTerms:
		b, ok := value.(bool)
		if !ok {
			return &ValueError{Field: path, Message: "must be true or false"}
		}
		f.AcceptTerms = b

	case FieldProvince, FieldDistrict, FieldCommune, FieldVillage:
		s, err := asText(path, value)
		if err != nil {
			return err
		}
		if err := c.setAddressLocked(ctx, path, s); err != nil {
			return err
		}

	case FieldServicesOffered:
		set, err := asServices(path, value)
		if err != nil {
			return err
		}
		f.ServicesOffered = set

	case FieldOperatingHours:
		var hours domain.OperatingHours
		if err := decodeInto(value, &hours); err != nil {
			return &ValueError{Field: path, Message: "must map weekdays to schedules"}
		}
		merged := domain.DefaultOperatingHours()
		for day, sched := range hours {
			if !isWeekday(day) {
				return &ValueError{Field: path, Message: fmt.Sprintf("unknown weekday %q", string(day))}
			}
			merged[day] = sched
		}
		f.OperatingHours = merged
		c.clearPrefix(FieldOperatingHours)

	default:
		if strings.HasPrefix(path, FieldOperatingHours+".") {
			if err := c.setHoursLocked(path, value); err != nil {
				return err
			}
			break
		}
		target := textField(f, path)
		if target == nil {
			return fmt.Errorf("%w: %s", ErrUnknownField, path)
		}
		s, err := asText(path, value)
		if err != nil {
			return err
		}
		*target = s
	}

	delete(c.errors, path)
	return nil
}

func textField(f *domain.RegistrationForm, path string) *string {
	switch path {
	case FieldEmail:
		return &f.Email
	case FieldFullName:
		return &f.FullName
	case FieldPhoneNumber:
		return &f.PhoneNumber
	case FieldBusinessDescription:
		return &f.BusinessDescription
	case FieldBusinessLogoURL:
		return &f.BusinessLogoURL
	case FieldBusinessLicenseNumber:
		return &f.BusinessLicenseNumber
	case FieldBusinessPhone:
		return &f.BusinessPhone
	case FieldBusinessEmail:
		return &f.BusinessEmail
	case FieldStreetAddress:
		return &f.BusinessAddress.StreetAddress
	case FieldPharmacyLicenseNumber:
		return &f.PharmacyLicenseNumber
	case FieldLicenseDocumentURL:
		return &f.LicenseDocumentURL
	case FieldPharmacistInCharge:
		return &f.PharmacistInCharge
	case FieldPharmacistLicenseNumber:
		return &f.PharmacistLicenseNumber
	}
	return nil
}

// setAddressLocked enforces that a selection belongs to its parent before
// running the cascade. An empty value clears the level and everything below.
func (c *Controller) setAddressLocked(ctx context.Context, path string, code string) error {
	addr := &c.form.BusinessAddress
	level := addressLevel(path)

	if code != "" {
		options, err := c.optionsFor(ctx, level, *addr)
		if err != nil {
			return fmt.Errorf("%w: load %s options: %w", ErrAddressLookup, level, err)
		}
		if !containsCode(options, code) {
			return &ValueError{Field: path, Message: fmt.Sprintf("is not a valid %s for the selected parent", level)}
		}
	}

	for _, cleared := range cascadeAddress(addr, level, code) {
		delete(c.errors, cleared)
	}
	return nil
}

func (c *Controller) optionsFor(ctx context.Context, level domain.AddressLevel, addr domain.BusinessAddress) ([]domain.AddressOption, error) {
	if c.addresses == nil {
		return nil, errors.New("no address book configured")
	}
	switch level {
	case domain.LevelProvince:
		return c.addresses.Provinces(ctx)
	case domain.LevelDistrict:
		return c.addresses.Districts(ctx, addr.Province)
	case domain.LevelCommune:
		return c.addresses.Communes(ctx, addr.Province, addr.District)
	default:
		return c.addresses.Villages(ctx, addr.Province, addr.District, addr.Commune)
	}
}

func addressLevel(path string) domain.AddressLevel {
	switch path {
	case FieldProvince:
		return domain.LevelProvince
	case FieldDistrict:
		return domain.LevelDistrict
	case FieldCommune:
		return domain.LevelCommune
	}
	return domain.LevelVillage
}

func containsCode(options []domain.AddressOption, code string) bool {
	for _, o := range options {
		if o.Code == code {
			return true
		}
	}
	return false
}

// setHoursLocked handles operatingHours.<day> and operatingHours.<day>.<key>.
func (c *Controller) setHoursLocked(path string, value interface{}) error {
	parts := strings.Split(path, ".")
	if len(parts) < 2 || len(parts) > 3 || !isWeekday(domain.Weekday(parts[1])) {
		return fmt.Errorf("%w: %s", ErrUnknownField, path)
	}
	day := domain.Weekday(parts[1])
	if c.form.OperatingHours == nil {
		c.form.OperatingHours = domain.DefaultOperatingHours()
	}
	sched := c.form.OperatingHours[day]

	if len(parts) == 2 {
		if err := decodeInto(value, &sched); err != nil {
			return &ValueError{Field: path, Message: "must be a schedule with isOpen, open and close"}
		}
	} else {
		switch parts[2] {
		case "isOpen":
			b, ok := value.(bool)
			if !ok {
				return &ValueError{Field: path, Message: "must be true or false"}
			}
			sched.IsOpen = b
		case "open", "close":
			s, err := asText(path, value)
			if err != nil {
				return err
			}
			if parts[2] == "open" {
				sched.Open = s
			} else {
				sched.Close = s
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, path)
		}
	}

	c.form.OperatingHours[day] = sched
	c.clearPrefix(FieldOperatingHours + "." + string(day))
	return nil
}

func (c *Controller) clearPrefix(prefix string) {
	for k := range c.errors {
		if k == prefix || strings.HasPrefix(k, prefix+".") {
			delete(c.errors, k)
		}
	}
}

// Advance validates the current step and moves forward on success. At the
// last step it only validates; leaving the last step is Submit's job.
func (c *Controller) Advance() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.writable(); err != nil {
		return err
	}

	step := stepAt(c.step)
	errs := c.rules.ValidateStep(&c.form, step)
	c.observer.StepValidated(step.ID, errs == nil)
	if errs != nil {
		c.replaceStepErrors(step, errs)
		return errs
	}

	c.replaceStepErrors(step, nil)
	if c.step < len(steps)-1 {
		c.step++
	}
	return nil
}

func (c *Controller) replaceStepErrors(step Step, errs FieldErrors) {
	for _, f := range step.Fields {
		c.clearPrefix(f)
	}
	c.errors.merge(errs)
}

// Retreat moves one step back without validation.
func (c *Controller) Retreat() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.writable(); err != nil {
		return err
	}
	if c.step > 0 {
		c.step--
	}
	return nil
}

// Submit validates the whole form from the last step and hands a copy to the
// submitter. While the call is in flight every other operation, including a
// second Submit, fails with ErrSubmitting. On failure the form is kept and
// the wizard stays on the last step.
func (c *Controller) Submit(ctx context.Context) (*domain.UserIdentity, error) {
	c.mu.Lock()
	if err := c.writable(); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	last := len(steps) - 1
	if c.step != last {
		c.mu.Unlock()
		return nil, ErrNotTerminalStep
	}

	step := stepAt(last)
	if errs := c.rules.ValidateStep(&c.form, step); errs != nil {
		c.observer.StepValidated(step.ID, false)
		c.replaceStepErrors(step, errs)
		c.mu.Unlock()
		return nil, errs
	}
	if errs := c.rules.ValidateForm(&c.form); errs != nil {
		c.errors.merge(errs)
		c.mu.Unlock()
		return nil, errs
	}

	c.status = StatusSubmitting
	c.submitErr = nil
	payload := c.form.Clone()
	c.mu.Unlock()

	identity, err := c.submitter.CreateAccount(ctx, payload)
	c.observer.SubmissionFinished(err)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.status = StatusInProgress
		failure := toSubmitFailure(err)
		c.submitErr = failure
		if failure.Field != "" {
			c.errors[failure.Field] = failure.Message
		}
		return nil, err
	}

	c.status = StatusComplete
	c.identity = identity
	c.form = domain.RegistrationForm{}
	c.errors = FieldErrors{}
	return identity, nil
}

func toSubmitFailure(err error) *SubmitFailure {
	var ace *domain.AccountCreationError
	if errors.As(err, &ace) {
		return &SubmitFailure{Reason: ace.Reason, Field: ace.Field, Message: ace.Message}
	}
	return &SubmitFailure{
		Reason:  domain.ReasonUnavailable,
		Message: "We could not create your account. Please try again.",
	}
}

// UploadResult is the single outcome of an upload.
type UploadResult struct {
	URL string
	Err error
}

// AttachUpload waits for one upload to settle and stores its URL in field.
// An upload failure is recorded against that field only.
func (c *Controller) AttachUpload(ctx context.Context, field string, pending <-chan UploadResult) error {
	if field != FieldBusinessLogoURL && field != FieldLicenseDocumentURL {
		return fmt.Errorf("%w: %s does not accept uploads", ErrUnknownField, field)
	}

	var res UploadResult
	select {
	case <-ctx.Done():
		return ctx.Err()
	case r, ok := <-pending:
		if !ok {
			r = UploadResult{Err: errors.New("upload abandoned")}
		}
		res = r
	}

	if res.Err != nil {
		c.mu.Lock()
		if c.writable() == nil {
			c.errors[field] = "Upload failed, please try again"
		}
		c.mu.Unlock()
		return res.Err
	}

	return c.SetField(ctx, field, res.URL)
}

func asString(field string, v interface{}) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case nil:
		return "", nil
	}
	return "", &ValueError{Field: field, Message: "must be a string"}
}

// asText is asString for free text: NFC normalised and trimmed.
func asText(field string, v interface{}) (string, error) {
	s, err := asString(field, v)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(norm.NFC.String(s)), nil
}

func asServices(field string, v interface{}) (domain.ServiceSet, error) {
	var ids []domain.ServiceID
	if err := decodeInto(v, &ids); err != nil {
		return nil, &ValueError{Field: field, Message: "must be a list of service ids"}
	}
	for _, id := range ids {
		if !domain.IsKnownService(id) {
			return nil, &ValueError{Field: field, Message: fmt.Sprintf("unknown service %q", string(id))}
		}
	}
	return domain.NewServiceSet(ids...), nil
}

// decodeInto converts loosely typed input (decoded JSON or typed Go values)
// into dst through a JSON round trip.
func decodeInto(v interface{}, dst interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func isWeekday(d domain.Weekday) bool {
	for _, w := range domain.Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

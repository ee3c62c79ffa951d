package location

import (
	"errors"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/pkg/errs"
	"capsule/internal/pkg/guard"
)

var ErrCountryIsNotConstructed = errors.New("Country must be created via NewCountry or RestoreCountry")

// Country is identified by its ISO 3166-1 alpha-2 code. Countries created while
// resolving an address carry only the code; the descriptive attributes stay empty
// until reference data fills them in.
type Country struct {
	id              kernel.UUID
	code            string
	name            string
	defaultLanguage string
	defaultTimezone string
	guard           guard.ConstructorGuard
}

// NewCountry normalizes code and rejects anything that is not two letters.
func NewCountry(code string) (*Country, error) {
	code = NormalizeUpper(code)
	if code == "" {
		return nil, errs.NewValueIsRequiredError("country")
	}
	if !IsCountryCode(code) {
		return nil, errs.NewValueIsInvalidError("country")
	}

	return &Country{
		id:    kernel.NewUUID(),
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func RestoreCountry(id kernel.UUID, code, name, defaultLanguage, defaultTimezone string) (*Country, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !IsCountryCode(code) {
		return nil, errs.NewValueIsInvalidError("country")
	}

	return &Country{
		id:              id,
		code:            code,
		name:            name,
		defaultLanguage: defaultLanguage,
		defaultTimezone: defaultTimezone,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c *Country) Validate() error {
	if c == nil {
		return ErrCountryIsNotConstructed
	}
	return c.guard.Validate(ErrCountryIsNotConstructed)
}

func (c *Country) ID() kernel.UUID         { return c.id }
func (c *Country) Code() string            { return c.code }
func (c *Country) Name() string            { return c.name }
func (c *Country) DefaultLanguage() string { return c.defaultLanguage }
func (c *Country) DefaultTimezone() string { return c.defaultTimezone }

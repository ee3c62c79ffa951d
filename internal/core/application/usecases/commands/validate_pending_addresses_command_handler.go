package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/core/ports"
)

// ValidationBatchResult summarizes one batch. Next is the cursor for the following
// batch, nil once the end of the pending set was reached or the batch failed.
// Stale counts recognised addresses that were edited while being geocoded.
type ValidationBatchResult struct {
	Checked   int
	Validated int
	Stale     int
	Next      *kernel.UUID
}

// ValidatePendingAddressesCommandHandler geocodes unvalidated addresses and marks
// those the provider recognises as valid, recording their coordinates. Addresses
// the provider rejects are left untouched. Geocoding happens outside any
// transaction; only is_valid and the coordinate are written afterwards, and
// only for rows nobody changed in the meantime.
//
// A provider outage stops the batch: addresses validated before it are still
// saved and the outage error is returned.
type ValidatePendingAddressesCommandHandler struct {
	uowFactory AddressUoWFactory
	geocoder   ports.Geocoder
	logger     *slog.Logger
}

func NewValidatePendingAddressesCommandHandler(
	uowFactory AddressUoWFactory, geocoder ports.Geocoder, logger *slog.Logger,
) ValidatePendingAddressesCommandHandler {
	return ValidatePendingAddressesCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		logger:     logger.With("component", "address_validation"),
	}
}

// recognised is a geocoded address together with the snapshot it was read at.
type recognised struct {
	id         kernel.UUID
	coordinate kernel.Coordinate
	seenAt     time.Time
}

func (h *ValidatePendingAddressesCommandHandler) Handle(
	ctx context.Context, cmd ValidatePendingAddressesCommand,
) (ValidationBatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return ValidationBatchResult{}, err
	}

	pending, err := h.uowFactory.Create().AddressRepository().
		GetPendingValidation(ctx, cmd.After(), cmd.BatchSize())
	if err != nil {
		return ValidationBatchResult{}, err
	}

	var result ValidationBatchResult
	if len(pending) == cmd.BatchSize() {
		last := pending[len(pending)-1].Address.ID()
		result.Next = &last
	}

	found := make([]recognised, 0, len(pending))
	var geocodeErr error
	for _, p := range pending {
		result.Checked++

		geocoded, gErr := h.geocoder.Geocode(ctx, geocodeQuery(p))
		if gErr != nil {
			geocodeErr = gErr
			result.Next = nil
			break
		}
		if !geocoded.Valid {
			h.logger.DebugContext(ctx, "address not recognised by provider",
				"address_id", p.Address.ID().String(), "status", geocoded.Status)
			continue
		}

		coordinate, cErr := kernel.NewCoordinate(geocoded.Latitude, geocoded.Longitude)
		if cErr != nil {
			h.logger.WarnContext(ctx, "provider returned invalid coordinates",
				"address_id", p.Address.ID().String(), "error", cErr)
			continue
		}

		found = append(found, recognised{
			id:         p.Address.ID(),
			coordinate: coordinate,
			seenAt:     p.Address.UpdatedAt(),
		})
	}

	validated, err := h.save(ctx, found)
	if err != nil {
		result.Next = nil
		return result, errors.Join(geocodeErr, err)
	}

	result.Validated = validated
	result.Stale = len(found) - validated
	return result, geocodeErr
}

func (h *ValidatePendingAddressesCommandHandler) save(ctx context.Context, found []recognised) (int, error) {
	if len(found) == 0 {
		return 0, nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	addressRepo := uow.AddressRepository()
	validated := 0
	for _, f := range found {
		ok, err := addressRepo.MarkValidated(ctx, f.id, f.coordinate, f.seenAt)
		if err != nil {
			return 0, err
		}
		if !ok {
			h.logger.DebugContext(ctx, "address changed while being validated", "address_id", f.id.String())
			continue
		}
		validated++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return validated, nil
}

// geocodeQuery joins the address parts into one free-text line.
func geocodeQuery(p ports.PendingAddress) string {
	parts := []string{
		p.Address.AddressLine1(),
		p.Address.AddressLine2(),
		p.City,
		p.State,
		p.Address.PostalCode(),
		p.CountryCode,
	}

	nonEmpty := parts[:0]
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}

	return strings.Join(nonEmpty, ", ")
}

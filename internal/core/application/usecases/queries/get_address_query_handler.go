package queries

import (
	"context"
	"database/sql"
	"errors"

	"capsule/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAddressQueryHandler returns an owner's address. Ids that do not exist and
// ids owned by someone else both yield errs.ObjectNotFoundError.
type GetAddressQueryHandler struct {
	db *gorm.DB
}

func NewGetAddressQueryHandler(db *gorm.DB) GetAddressQueryHandler {
	return GetAddressQueryHandler{db: db}
}

func (h GetAddressQueryHandler) Handle(ctx context.Context, query GetAddressQuery) (AddressView, error) {
	if err := query.Validate(); err != nil {
		return AddressView{}, err
	}

	row := h.db.WithContext(ctx).Raw(addressViewSelect+`
		WHERE a.id = ? AND a.user_id = ?
	`, query.AddressID().Bytes(), query.UserID()).Row()

	view, err := scanAddressView(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AddressView{}, errs.NewObjectNotFoundError("address", query.AddressID().String())
		}
		return AddressView{}, err
	}

	return view, nil
}

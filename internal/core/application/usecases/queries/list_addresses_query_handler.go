package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListAddressesQueryHandler returns the owner's addresses, oldest first.
type ListAddressesQueryHandler struct {
	db *gorm.DB
}

func NewListAddressesQueryHandler(db *gorm.DB) ListAddressesQueryHandler {
	return ListAddressesQueryHandler{db: db}
}

func (h ListAddressesQueryHandler) Handle(ctx context.Context, query ListAddressesQuery) ([]AddressView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	addresses := make([]AddressView, 0)

	rows, err := h.db.WithContext(ctx).Raw(addressViewSelect+`
		WHERE a.user_id = ?
		ORDER BY a.created_at, a.id
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanAddressView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		addresses = append(addresses, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}

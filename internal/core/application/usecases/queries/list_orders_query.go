package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders for the admin dashboard, newest first.
// Optionally filters by status (dashboard slug or canonical name) and by a
// free-text search over order code, customer name, and phone.
type ListOrdersQuery struct {
	status *order.Status
	search string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an admin order listing query.
// An empty status or the literal "all" means all statuses; an empty search
// means no filter.
func NewListOrdersQuery(status string, search string) (ListOrdersQuery, error) {
	listQuery := ListOrdersQuery{
		search: search,
		guard:  guard.NewConstructorGuard(),
	}

	if status != "" && status != "all" {
		parsed, err := order.StatusFromSlug(status)
		if err != nil {
			parsed, err = order.StatusFromString(status)
		}
		if err != nil {
			return ListOrdersQuery{}, err
		}
		listQuery.status = &parsed
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the parsed status filter, nil when listing all statuses.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Search returns the free-text filter, empty when unfiltered.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// ListOrdersQueryResponse is one row of the admin dashboard order table.
// Items is a display summary like "Idli Batter x2, Ghee x1".
type ListOrdersQueryResponse struct {
	Code          string
	CustomerName  string
	Phone         string
	Address       string
	Status        string
	Items         string
	Subtotal      int64
	DeliveryFee   int64
	Total         int64
	PaymentMode   string
	ShopPrice     int64
	ShopMargin    int64
	ShopPaid      bool
	DeliveryAgent string
	OTP           string
	CreatedAt     time.Time
}

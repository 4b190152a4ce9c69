package http

// CartItemRequest is the body for adding or updating a cart line.
type CartItemRequest struct {
	ProductID   string `json:"productId" validate:"required,uuid"`
	Quantity    int    `json:"quantity"`
	VariantName string `json:"variantName"`
}

// CheckoutItemRequest identifies one product being ordered.
type CheckoutItemRequest struct {
	ProductID   string `json:"productId" validate:"required,uuid"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	VariantName string `json:"variantName"`
}

// LocationRequest carries structured delivery coordinates.
type LocationRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// CheckoutRequest is the body for placing an order. Works for guests too;
// the customer is taken from the X-Customer-ID header when present.
// Location is optional; without it, coordinates are extracted from the
// address text on a best-effort basis.
type CheckoutRequest struct {
	CustomerName  string                `json:"customerName"`
	Phone         string                `json:"phone" validate:"required"`
	Address       string                `json:"address" validate:"required"`
	Notes         string                `json:"notes"`
	Location      *LocationRequest      `json:"location"`
	PaymentMethod string                `json:"paymentMethod"`
	CouponCode    string                `json:"couponCode"`
	OfferPrice    *int64                `json:"offerPrice"`
	Items         []CheckoutItemRequest `json:"items" validate:"required,min=1,dive"`
}

// AssignShopRequest is the body for assigning an order to a shop.
type AssignShopRequest struct {
	ShopID     string `json:"shopId" validate:"required,uuid"`
	ShopPrice  *int64 `json:"shopPrice"`
	ShopMargin *int64 `json:"shopMargin"`
}

// AssignDeliveryRequest is the body for handing an order to a delivery agent.
type AssignDeliveryRequest struct {
	AgentName string `json:"agentName" validate:"required"`
}

// ChangeStatusRequest is the body for the admin status override.
// Accepts canonical names ("OUT_FOR_DELIVERY") and storefront slugs
// ("preparing").
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/order"
)

// CartItem is one line of the cart view.
type CartItem struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	VariantName string `json:"variantName,omitempty"`
	LineTotal   int64  `json:"lineTotal"`
}

// Cart is the storefront cart view.
type Cart struct {
	Items    []CartItem `json:"items"`
	Subtotal int64      `json:"subtotal"`
}

// OrderCreated is the checkout response.
type OrderCreated struct {
	OrderID string `json:"orderId"`
	Code    string `json:"code"`
}

// DeliveryAssigned is the assign-delivery response. The OTP is handed to
// the agent for the shop pickup.
type DeliveryAssigned struct {
	OTP string `json:"otp"`
}

// OrderItem is one line of an order in the customer history.
type OrderItem struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	VariantName string `json:"variantName,omitempty"`
}

// Order is one order in the customer history view.
type Order struct {
	ID              string      `json:"id"`
	Code            string      `json:"code"`
	Status          string      `json:"status"`
	Subtotal        int64       `json:"subtotal"`
	DeliveryFee     int64       `json:"deliveryFee"`
	Total           int64       `json:"total"`
	PaymentMode     string      `json:"paymentMode"`
	CouponCode      string      `json:"couponCode,omitempty"`
	OfferPrice      *int64      `json:"offerPrice,omitempty"`
	DeliveryAgent   string      `json:"deliveryAgent,omitempty"`
	OTP             string      `json:"otp,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	CancelledReason string      `json:"cancelledReason,omitempty"`
	Items           []OrderItem `json:"items"`
}

// AdminOrder is one row of the admin order list.
type AdminOrder struct {
	Code          string    `json:"code"`
	CustomerName  string    `json:"customerName"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Status        string    `json:"status"`
	Items         string    `json:"items"`
	Subtotal      int64     `json:"subtotal"`
	DeliveryFee   int64     `json:"deliveryFee"`
	Total         int64     `json:"total"`
	PaymentMode   string    `json:"paymentMode"`
	ShopPrice     int64     `json:"shopPrice"`
	ShopMargin    int64     `json:"shopMargin"`
	ShopPaid      bool      `json:"shopPaid"`
	DeliveryAgent string    `json:"deliveryAgent,omitempty"`
	OTP           string    `json:"otp,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NearestShop is one ranked candidate for an order.
// DistanceKm is null when the distance could not be computed.
type NearestShop struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Phone       string   `json:"phone,omitempty"`
	AddressLine string   `json:"addressLine,omitempty"`
	Rating      float64  `json:"rating"`
	Products    []string `json:"products"`
	DistanceKm  *float64 `json:"distanceKm"`
}

// NearestShops is the candidate list for assigning an order to a shop.
type NearestShops struct {
	OrderCode string        `json:"orderCode"`
	Degraded  bool          `json:"degraded"`
	Shops     []NearestShop `json:"shops"`
}

// cartFromDomain renders a cart aggregate as the storefront view. A nil
// aggregate renders as an empty cart.
func cartFromDomain(aggregate *cart.Cart) Cart {
	if aggregate == nil {
		return Cart{Items: []CartItem{}}
	}

	lines := aggregate.Lines()
	items := make([]CartItem, len(lines))
	var subtotal int64
	for i, line := range lines {
		lineTotal := line.Price() * int64(line.Quantity())
		items[i] = CartItem{
			ProductID:   line.ProductID().String(),
			Name:        line.Name(),
			Price:       line.Price(),
			Quantity:    line.Quantity(),
			VariantName: line.VariantName(),
			LineTotal:   lineTotal,
		}
		subtotal += lineTotal
	}

	return Cart{Items: items, Subtotal: subtotal}
}

// orderFromDomain renders an order aggregate as the customer history view.
func orderFromDomain(aggregate *order.Order) Order {
	lines := aggregate.Lines()
	items := make([]OrderItem, len(lines))
	for i, line := range lines {
		items[i] = OrderItem{
			Name:        line.Name(),
			Price:       line.Price(),
			Quantity:    line.Quantity(),
			VariantName: line.VariantName(),
		}
	}

	return Order{
		ID:              aggregate.ID().String(),
		Code:            aggregate.Code(),
		Status:          aggregate.Status().String(),
		Subtotal:        aggregate.Totals().Subtotal,
		DeliveryFee:     aggregate.Totals().DeliveryFee,
		Total:           aggregate.Totals().Total,
		PaymentMode:     aggregate.PaymentMethod().Mode(),
		CouponCode:      aggregate.CouponCode(),
		OfferPrice:      aggregate.OfferPrice(),
		DeliveryAgent:   aggregate.DeliveryAgent(),
		OTP:             aggregate.OTP(),
		CreatedAt:       aggregate.Timeline().CreatedAt(),
		CancelledReason: aggregate.CancelledReason(),
		Items:           items,
	}
}

func cartFromQuery(view queries.GetCartQueryResponse) Cart {
	items := make([]CartItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = CartItem{
			ProductID:   item.ProductID.String(),
			Name:        item.Name,
			Price:       item.Price,
			Quantity:    item.Quantity,
			VariantName: item.VariantName,
			LineTotal:   item.LineTotal,
		}
	}

	return Cart{Items: items, Subtotal: view.Subtotal}
}

func ordersFromQuery(views []queries.GetMyOrdersQueryResponse) []Order {
	orders := make([]Order, len(views))
	for i, view := range views {
		items := make([]OrderItem, len(view.Items))
		for j, item := range view.Items {
			items[j] = OrderItem{
				Name:        item.Name,
				Price:       item.Price,
				Quantity:    item.Quantity,
				VariantName: item.VariantName,
			}
		}

		orders[i] = Order{
			ID:              view.ID.String(),
			Code:            view.Code,
			Status:          view.Status,
			Subtotal:        view.Subtotal,
			DeliveryFee:     view.DeliveryFee,
			Total:           view.Total,
			PaymentMode:     view.PaymentMode,
			CouponCode:      view.CouponCode,
			OfferPrice:      view.OfferPrice,
			DeliveryAgent:   view.DeliveryAgent,
			OTP:             view.OTP,
			CreatedAt:       view.CreatedAt,
			CancelledReason: view.CancelledReason,
			Items:           items,
		}
	}

	return orders
}

func adminOrdersFromQuery(views []queries.ListOrdersQueryResponse) []AdminOrder {
	orders := make([]AdminOrder, len(views))
	for i, view := range views {
		orders[i] = AdminOrder{
			Code:          view.Code,
			CustomerName:  view.CustomerName,
			Phone:         view.Phone,
			Address:       view.Address,
			Status:        view.Status,
			Items:         view.Items,
			Subtotal:      view.Subtotal,
			DeliveryFee:   view.DeliveryFee,
			Total:         view.Total,
			PaymentMode:   view.PaymentMode,
			ShopPrice:     view.ShopPrice,
			ShopMargin:    view.ShopMargin,
			ShopPaid:      view.ShopPaid,
			DeliveryAgent: view.DeliveryAgent,
			OTP:           view.OTP,
			CreatedAt:     view.CreatedAt,
		}
	}

	return orders
}

func nearestShopsFromQuery(view queries.NearestShopsQueryResponse) NearestShops {
	shops := make([]NearestShop, len(view.Shops))
	for i, shop := range view.Shops {
		shops[i] = NearestShop{
			ID:          shop.ID.String(),
			Name:        shop.Name,
			Phone:       shop.Phone,
			AddressLine: shop.AddressLine,
			Rating:      shop.Rating,
			Products:    shop.Products,
			DistanceKm:  shop.DistanceKm,
		}
	}

	return NearestShops{
		OrderCode: view.OrderCode,
		Degraded:  view.Degraded,
		Shops:     shops,
	}
}

package textyess

import "github.com/shopspring/decimal"

// ---------------------------------------------------------------------------
// Platform Snapshots
// ---------------------------------------------------------------------------
//
// The host platform's order, address and shipment objects are projected into
// these narrow read-only records by the event glue layer before they reach
// the payload builder. Monetary amounts use decimal.Decimal; conversion to
// the external contract's numeric JSON happens in one place, in the builder.

// OrderSnapshot is a read-only projection of a platform order.
type OrderSnapshot struct {
	// IncrementID is the human-readable order reference
	IncrementID string
	// IsNew is true only for a newly placed order; updates to pre-existing
	// orders must not fire the order-created webhook
	IsNew bool
	// CreatedAt is the raw platform timestamp string
	CreatedAt string
	// UpdatedAt is the raw platform timestamp string
	UpdatedAt string
	// State is the platform order lifecycle state
	State string
	// CurrencyCode is the ISO 4217 order currency
	CurrencyCode string
	// GrandTotal is the order grand total
	GrandTotal decimal.Decimal
	// Subtotal is the order subtotal
	Subtotal decimal.Decimal
	// TaxAmount is the total tax amount
	TaxAmount decimal.Decimal
	// DiscountAmount is the total discount amount
	DiscountAmount decimal.Decimal
	// ShippingAmount is the shipping amount
	ShippingAmount decimal.Decimal
	// CustomerID is the numeric customer ID, empty for guest checkout
	CustomerID string
	// CustomerEmail is the customer email address
	CustomerEmail string
	// CustomerFirstname is the customer first name
	CustomerFirstname string
	// CustomerLastname is the customer last name
	CustomerLastname string
	// BillingAddress is nil when the order has no billing address
	BillingAddress *AddressSnapshot
	// ShippingAddress is nil when the order has no shipping address
	ShippingAddress *AddressSnapshot
	// Items contains the order's visible items, in source order
	Items []OrderItemSnapshot
	// ShippingDescription is the human-readable shipping method title
	ShippingDescription string
	// ShippingMethod is the shipping method code
	ShippingMethod string
	// Payment is nil when the order carries no payment
	Payment *PaymentSnapshot
}

// AddressSnapshot is a read-only projection of a platform order address.
// Every field may be empty.
type AddressSnapshot struct {
	Firstname  string
	Lastname   string
	Company    string
	Street     []string
	City       string
	Region     string
	RegionCode string
	CountryID  string
	Postcode   string
	Telephone  string
}

// OrderItemSnapshot is a read-only projection of a visible order item.
type OrderItemSnapshot struct {
	// ItemID is the order item entity ID, may be empty
	ItemID string
	// ProductID is the platform product ID
	ProductID string
	// SKU is the stock keeping unit
	SKU string
	// Name is the product name
	Name string
	// VariantAttributes holds the variant attribute values, in option order
	VariantAttributes []string
	// QtyOrdered is the ordered quantity
	QtyOrdered decimal.Decimal
	// Price is the unit price
	Price decimal.Decimal
	// RowTotal is the row total
	RowTotal decimal.Decimal
	// DiscountAmount is the row discount
	DiscountAmount decimal.Decimal
	// TaxAmount is the row tax
	TaxAmount decimal.Decimal
}

// PaymentSnapshot is a read-only projection of an order payment.
type PaymentSnapshot struct {
	// MethodTitle is the configured payment method title
	MethodTitle string
}

// ShipmentSnapshot is a read-only projection of a platform shipment
// with a back-reference to its order.
type ShipmentSnapshot struct {
	// IncrementID is the human-readable shipment reference
	IncrementID string
	// Order is the shipment's parent order
	Order *OrderSnapshot
	// Tracks contains the shipment's tracking records, in source order
	Tracks []TrackSnapshot
}

// TrackSnapshot is a read-only projection of a shipment tracking record.
type TrackSnapshot struct {
	// EntityID is the track entity ID
	EntityID string
	// CarrierCode is the platform carrier code
	CarrierCode string
	// TrackNumber is the carrier tracking number
	TrackNumber string
	// Title is the carrier title shown to the shopper
	Title string
	// URL is the provider-supplied tracking URL, usually empty
	URL string
}

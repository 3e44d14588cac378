package textyess

// ---------------------------------------------------------------------------
// External Contract Value Objects
// ---------------------------------------------------------------------------

// OrderPayload is the canonical order representation sent to TextYess.
// Every key is always present in the serialized output, even when the
// source value is missing; monetary amounts are numeric, never null.
// Field order matches the TextYess OrderExtendedDto contract.
type OrderPayload struct {
	// ID is the human-readable order reference (increment ID)
	ID string `json:"id"`
	// CreatedAt is an ISO-8601 timestamp, empty when the source is unparseable
	CreatedAt string `json:"createdAt"`
	// UpdatedAt is an ISO-8601 timestamp, empty when the source is unparseable
	UpdatedAt string `json:"updatedAt"`
	// Total is the order grand total
	Total float64 `json:"total"`
	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`
	// Status is the derived financial status, never empty
	Status FinancialStatus `json:"status"`
	// Subtotal is the order subtotal before tax and shipping
	Subtotal float64 `json:"subtotal"`
	// TotalTax is the total tax amount
	TotalTax float64 `json:"totalTax"`
	// TotalDiscount is the total discount amount
	TotalDiscount float64 `json:"totalDiscount"`
	// TotalShipping is the shipping amount
	TotalShipping float64 `json:"totalShipping"`
	// DiscountCodes is always empty; the platform has no native equivalent
	DiscountCodes []string `json:"discountCodes"`
	// Tags is always empty; the platform has no native equivalent
	Tags []string `json:"tags"`
	// Customer identifies the buyer
	Customer Customer `json:"customer"`
	// BillingAddress is the billing address, zero-valued when absent
	BillingAddress AddressRecord `json:"billingAddress"`
	// ShippingAddress is the shipping address, zero-valued when absent
	ShippingAddress AddressRecord `json:"shippingAddress"`
	// LineItems preserves the order of the source's visible items
	LineItems []LineItem `json:"lineItems"`
	// ShippingLines holds zero or one shipping description
	ShippingLines []ShippingLine `json:"shippingLines"`
	// PaymentMethods holds zero or one payment method title
	PaymentMethods []string `json:"paymentMethods"`
	// Fulfillments is empty unless merged in by a shipment event
	Fulfillments []FulfillmentRecord `json:"fulfillments"`
}

// Customer identifies the buyer on an order.
type Customer struct {
	// ID is the numeric customer ID, falling back to the email for guests
	ID string `json:"id"`
	// Email is the customer email address
	Email string `json:"email"`
	// FirstName falls back to the billing address first name
	FirstName string `json:"firstName"`
	// LastName falls back to the billing address last name
	LastName string `json:"lastName"`
	// Phone is the billing address telephone
	Phone string `json:"phone"`
}

// AddressRecord is the external address shape. Every field is a string
// defaulting to empty when the source field is absent.
type AddressRecord struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Company      string `json:"company"`
	Address1     string `json:"address1"`
	Address2     string `json:"address2"`
	City         string `json:"city"`
	Province     string `json:"province"`
	ProvinceCode string `json:"provinceCode"`
	Country      string `json:"country"`
	CountryCode  string `json:"countryCode"`
	Zip          string `json:"zip"`
	Phone        string `json:"phone"`
}

// LineItem is a single visible order line in the external contract.
type LineItem struct {
	// ID is the order item ID, falling back to the product ID
	ID string `json:"id"`
	// ProductID is the platform product ID
	ProductID string `json:"productId"`
	// SKU is the stock keeping unit
	SKU string `json:"sku"`
	// Title is the product name
	Title string `json:"title"`
	// VariantTitle joins the variant attribute values with " / "
	VariantTitle string `json:"variantTitle"`
	// Quantity is the ordered quantity as an integer
	Quantity int `json:"quantity"`
	// Price is the unit price rounded to 2 decimals
	Price float64 `json:"price"`
	// Total is the row total rounded to 2 decimals
	Total float64 `json:"total"`
	// Discount is the row discount, unrounded
	Discount float64 `json:"discount"`
	// Tax is the row tax, unrounded
	Tax float64 `json:"tax"`
}

// ShippingLine describes the order's shipping method.
type ShippingLine struct {
	// Title is the shipping description
	Title string `json:"title"`
	// Price is the shipping amount
	Price float64 `json:"price"`
	// Code is the shipping method code
	Code string `json:"code"`
}

// FulfillmentRecord is TextYess's term for a shipment attached to an order.
// Field names are snake_case on the wire, matching the external contract.
type FulfillmentRecord struct {
	// ID is the shipment increment ID
	ID string `json:"id"`
	// ShipmentStatus is always "shipped"
	ShipmentStatus string `json:"shipment_status"`
	// TrackingCompany is the carrier label of the first valid track
	TrackingCompany string `json:"tracking_company"`
	// TrackingURL is the tracking URL of the first valid track
	TrackingURL string `json:"tracking_url"`
	// TrackingURLs lists the non-empty tracking URLs across all tracks
	TrackingURLs []string `json:"tracking_urls"`
}

// ShipmentStatusShipped is the only shipment status TextYess receives;
// a fulfillment webhook is fired when a shipment is created.
const ShipmentStatusShipped = "shipped"

package payload

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khehtisham/magento2-textyess-integration/internal/domain/textyess"
)

// platformTimeLayout is the host platform's datetime format (MySQL style,
// implicitly UTC).
const platformTimeLayout = "2006-01-02 15:04:05"

// Builder composes order snapshots into the canonical TextYess payload.
// Build is a pure function of its inputs: no network, no mutation of the
// snapshot, deterministic given identical input state.
type Builder struct {
	countries CountryResolver
}

// NewBuilder creates a payload builder using the given country resolver
func NewBuilder(countries CountryResolver) *Builder {
	return &Builder{countries: countries}
}

// Extra carries data merged on top of a built payload. It is how a shipment
// event injects a populated fulfillments entry without the builder needing
// shipment-awareness for the order-created path.
type Extra struct {
	// Fulfillments overwrites the payload's fulfillments field when non-nil
	Fulfillments []textyess.FulfillmentRecord
}

// Build produces the TextYess order payload for an order snapshot.
func (b *Builder) Build(order *textyess.OrderSnapshot) *textyess.OrderPayload {
	return b.BuildWithExtra(order, Extra{})
}

// BuildWithExtra builds the order payload and overwrites the fulfillments
// field with extra.Fulfillments when supplied.
func (b *Builder) BuildWithExtra(order *textyess.OrderSnapshot, extra Extra) *textyess.OrderPayload {
	billing := order.BillingAddress

	p := &textyess.OrderPayload{
		ID:        order.IncrementID,
		CreatedAt: formatTimestamp(order.CreatedAt),
		UpdatedAt: formatTimestamp(order.UpdatedAt),
		Total:     order.GrandTotal.InexactFloat64(),
		Currency:  order.CurrencyCode,
		Status:    textyess.MapOrderState(order.State),

		Subtotal:      order.Subtotal.InexactFloat64(),
		TotalTax:      order.TaxAmount.InexactFloat64(),
		TotalDiscount: order.DiscountAmount.InexactFloat64(),
		TotalShipping: order.ShippingAmount.InexactFloat64(),

		// The platform does not store discount codes or tags natively.
		DiscountCodes: []string{},
		Tags:          []string{},

		Customer: b.buildCustomer(order, billing),

		BillingAddress:  MapAddress(billing, b.countries),
		ShippingAddress: MapAddress(order.ShippingAddress, b.countries),

		LineItems: b.buildLineItems(order.Items),

		ShippingLines:  buildShippingLines(order),
		PaymentMethods: buildPaymentMethods(order),

		Fulfillments: []textyess.FulfillmentRecord{},
	}

	if extra.Fulfillments != nil {
		p.Fulfillments = extra.Fulfillments
	}

	return p
}

// BuildFulfillment extracts a fulfillment record from a shipment snapshot.
// The single-valued tracking fields come from the first usable track.
func (b *Builder) BuildFulfillment(shipment *textyess.ShipmentSnapshot) textyess.FulfillmentRecord {
	tracks := ResolveTracks(shipment.Tracks)
	first := firstTrack(tracks)

	return textyess.FulfillmentRecord{
		ID:              shipment.IncrementID,
		ShipmentStatus:  textyess.ShipmentStatusShipped,
		TrackingCompany: first.Company,
		TrackingURL:     first.URL,
		TrackingURLs:    trackingURLs(tracks),
	}
}

func (b *Builder) buildCustomer(order *textyess.OrderSnapshot, billing *textyess.AddressSnapshot) textyess.Customer {
	customer := textyess.Customer{
		ID:        order.CustomerID,
		Email:     order.CustomerEmail,
		FirstName: order.CustomerFirstname,
		LastName:  order.CustomerLastname,
	}

	// Guest checkouts have no numeric customer ID; fall back to the email.
	if customer.ID == "" {
		customer.ID = order.CustomerEmail
	}

	if billing != nil {
		if customer.FirstName == "" {
			customer.FirstName = billing.Firstname
		}
		if customer.LastName == "" {
			customer.LastName = billing.Lastname
		}
		customer.Phone = billing.Telephone
	}

	return customer
}

func (b *Builder) buildLineItems(items []textyess.OrderItemSnapshot) []textyess.LineItem {
	lineItems := make([]textyess.LineItem, 0, len(items))

	for _, item := range items {
		id := item.ItemID
		if id == "" {
			id = item.ProductID
		}

		lineItems = append(lineItems, textyess.LineItem{
			ID:           id,
			ProductID:    item.ProductID,
			SKU:          item.SKU,
			Title:        item.Name,
			VariantTitle: strings.Join(item.VariantAttributes, " / "),
			Quantity:     int(item.QtyOrdered.IntPart()),
			Price:        roundAmount(item.Price),
			Total:        roundAmount(item.RowTotal),
			Discount:     item.DiscountAmount.InexactFloat64(),
			Tax:          item.TaxAmount.InexactFloat64(),
		})
	}

	return lineItems
}

func buildShippingLines(order *textyess.OrderSnapshot) []textyess.ShippingLine {
	if order.ShippingDescription == "" {
		return []textyess.ShippingLine{}
	}
	return []textyess.ShippingLine{{
		Title: order.ShippingDescription,
		Price: order.ShippingAmount.InexactFloat64(),
		Code:  order.ShippingMethod,
	}}
}

func buildPaymentMethods(order *textyess.OrderSnapshot) []string {
	if order.Payment == nil {
		return []string{}
	}
	return []string{order.Payment.MethodTitle}
}

// roundAmount rounds a monetary amount to 2 decimal places.
func roundAmount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// formatTimestamp parses a platform timestamp string and re-emits it as
// ISO-8601 (RFC 3339). An absent or unparseable source value yields "".
func formatTimestamp(raw string) string {
	if raw == "" {
		return ""
	}
	if t, err := time.Parse(platformTimeLayout, raw); err == nil {
		return t.UTC().Format(time.RFC3339)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format(time.RFC3339)
	}
	return ""
}

// Package dto defines the JSON shapes of the event intake endpoints and
// their projection into domain snapshots.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/khehtisham/magento2-textyess-integration/internal/domain/textyess"
)

// OrderEventRequest is the body of an order-placed event.
type OrderEventRequest struct {
	Order OrderDTO `json:"order" binding:"required"`
}

// ShipmentEventRequest is the body of a shipment-created event. The
// shipment carries a back-reference to its fully loaded order.
type ShipmentEventRequest struct {
	Shipment ShipmentDTO `json:"shipment" binding:"required"`
}

// EventResponse acknowledges an event. Accepted is always true for a
// well-formed event; Delivered reports the webhook outcome, which must not
// fail the caller's transaction.
type EventResponse struct {
	Accepted  bool `json:"accepted"`
	Delivered bool `json:"delivered"`
}

// OrderDTO mirrors the host platform's order projection.
type OrderDTO struct {
	IncrementID string `json:"increment_id" binding:"required"`
	// IsNew distinguishes a newly placed order from an update to a
	// pre-existing one; absent means new
	IsNew               *bool           `json:"is_new"`
	CreatedAt           string          `json:"created_at"`
	UpdatedAt           string          `json:"updated_at"`
	State               string          `json:"state"`
	OrderCurrencyCode   string          `json:"order_currency_code" binding:"omitempty,iso4217"`
	GrandTotal          decimal.Decimal `json:"grand_total"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	TaxAmount           decimal.Decimal `json:"tax_amount"`
	DiscountAmount      decimal.Decimal `json:"discount_amount"`
	ShippingAmount      decimal.Decimal `json:"shipping_amount"`
	CustomerID          string          `json:"customer_id"`
	CustomerEmail       string          `json:"customer_email" binding:"omitempty,email"`
	CustomerFirstname   string          `json:"customer_firstname"`
	CustomerLastname    string          `json:"customer_lastname"`
	BillingAddress      *AddressDTO     `json:"billing_address"`
	ShippingAddress     *AddressDTO     `json:"shipping_address"`
	Items               []OrderItemDTO  `json:"items"`
	ShippingDescription string          `json:"shipping_description"`
	ShippingMethod      string          `json:"shipping_method"`
	Payment             *PaymentDTO     `json:"payment"`
}

// AddressDTO mirrors a platform order address.
type AddressDTO struct {
	Firstname  string   `json:"firstname"`
	Lastname   string   `json:"lastname"`
	Company    string   `json:"company"`
	Street     []string `json:"street"`
	City       string   `json:"city"`
	Region     string   `json:"region"`
	RegionCode string   `json:"region_code"`
	CountryID  string   `json:"country_id"`
	Postcode   string   `json:"postcode"`
	Telephone  string   `json:"telephone"`
}

// OrderItemDTO mirrors a visible order item.
type OrderItemDTO struct {
	ItemID            string          `json:"item_id"`
	ProductID         string          `json:"product_id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	VariantAttributes []string        `json:"variant_attributes"`
	QtyOrdered        decimal.Decimal `json:"qty_ordered"`
	Price             decimal.Decimal `json:"price"`
	RowTotal          decimal.Decimal `json:"row_total"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
}

// PaymentDTO mirrors an order payment.
type PaymentDTO struct {
	MethodTitle string `json:"method_title"`
}

// ShipmentDTO mirrors a platform shipment with its parent order.
type ShipmentDTO struct {
	IncrementID string     `json:"increment_id" binding:"required"`
	Order       OrderDTO   `json:"order" binding:"required"`
	Tracks      []TrackDTO `json:"tracks"`
}

// TrackDTO mirrors a shipment tracking record.
type TrackDTO struct {
	EntityID    string `json:"entity_id"`
	CarrierCode string `json:"carrier_code"`
	TrackNumber string `json:"track_number"`
	Title       string `json:"title"`
	URL         string `json:"url"`
}

// Snapshot projects the DTO into the domain order snapshot.
func (d *OrderDTO) Snapshot() *textyess.OrderSnapshot {
	snapshot := &textyess.OrderSnapshot{
		IncrementID:         d.IncrementID,
		IsNew:               d.IsNew == nil || *d.IsNew,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
		State:               d.State,
		CurrencyCode:        d.OrderCurrencyCode,
		GrandTotal:          d.GrandTotal,
		Subtotal:            d.Subtotal,
		TaxAmount:           d.TaxAmount,
		DiscountAmount:      d.DiscountAmount,
		ShippingAmount:      d.ShippingAmount,
		CustomerID:          d.CustomerID,
		CustomerEmail:       d.CustomerEmail,
		CustomerFirstname:   d.CustomerFirstname,
		CustomerLastname:    d.CustomerLastname,
		BillingAddress:      d.BillingAddress.snapshot(),
		ShippingAddress:     d.ShippingAddress.snapshot(),
		ShippingDescription: d.ShippingDescription,
		ShippingMethod:      d.ShippingMethod,
	}

	for _, item := range d.Items {
		snapshot.Items = append(snapshot.Items, textyess.OrderItemSnapshot{
			ItemID:            item.ItemID,
			ProductID:         item.ProductID,
			SKU:               item.SKU,
			Name:              item.Name,
			VariantAttributes: item.VariantAttributes,
			QtyOrdered:        item.QtyOrdered,
			Price:             item.Price,
			RowTotal:          item.RowTotal,
			DiscountAmount:    item.DiscountAmount,
			TaxAmount:         item.TaxAmount,
		})
	}

	if d.Payment != nil {
		snapshot.Payment = &textyess.PaymentSnapshot{MethodTitle: d.Payment.MethodTitle}
	}

	return snapshot
}

func (d *AddressDTO) snapshot() *textyess.AddressSnapshot {
	if d == nil {
		return nil
	}
	return &textyess.AddressSnapshot{
		Firstname:  d.Firstname,
		Lastname:   d.Lastname,
		Company:    d.Company,
		Street:     d.Street,
		City:       d.City,
		Region:     d.Region,
		RegionCode: d.RegionCode,
		CountryID:  d.CountryID,
		Postcode:   d.Postcode,
		Telephone:  d.Telephone,
	}
}

// Snapshot projects the DTO into the domain shipment snapshot.
func (d *ShipmentDTO) Snapshot() *textyess.ShipmentSnapshot {
	snapshot := &textyess.ShipmentSnapshot{
		IncrementID: d.IncrementID,
		Order:       d.Order.Snapshot(),
	}

	for _, track := range d.Tracks {
		snapshot.Tracks = append(snapshot.Tracks, textyess.TrackSnapshot{
			EntityID:    track.EntityID,
			CarrierCode: track.CarrierCode,
			TrackNumber: track.TrackNumber,
			Title:       track.Title,
			URL:         track.URL,
		})
	}

	return snapshot
}

// Package textyess contains the TextYess integration bounded context.
// This context keeps the TextYess order-management service synchronized
// with store order lifecycle events.
//
// Key concepts:
//   - OrderPayload: Value object matching the TextYess external order contract
//   - OrderSnapshot / ShipmentSnapshot: Narrow read-only projections of the
//     host platform's order and shipment objects
//   - FinancialStatus: TextYess's coarse order-payment lifecycle enum
//   - Notifier: Port interface for signed webhook delivery
//   - ConfigProvider: Port interface for per-store integration settings
//
// Design Pattern: Ports & Adapters
//   - Ports (interfaces) are defined here in the domain layer
//   - Adapters (implementations) are in the infrastructure layer
package textyess

// Package kernel holds the primitives shared by every aggregate of the sample
// tracking domain.
//
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - DocStatus: the Draft → Submitted → Cancelled lifecycle of stock-moving documents
//   - Warning: non-fatal validation messages returned alongside errors
//
// Quantities are github.com/shopspring/decimal values throughout the domain.
package kernel

// Package kernel holds the value objects shared by the delivery-order domain.
//
// The package includes:
//   - UUID: identifier for users, wrapping github.com/google/uuid
//   - Location: a geographic point (x, y) used for departures and destinations
//   - Participant: the name and phone of a sender or receiver
//
// All of them reject their zero value through Validate, so a value obtained
// from a constructor is always safe to persist.
package kernel

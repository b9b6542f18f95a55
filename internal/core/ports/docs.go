// Package ports defines the persistence contracts of the delivery-order core.
// Adapters in internal/adapters/out implement them; the application layer
// depends only on these interfaces.
package ports

// Package order models a delivery order at the moment it is placed.
//
// The package includes:
//   - Order: the aggregate written by the order repository as one unit
//   - Product: parcel dimensions and weight
//   - Transportation: which transport modes the requester accepts
//   - Status: lifecycle values stored with the order
//   - DeliveryPerson: the assignment of a delivery person to an existing order
//
// Key business rules:
//   - An order always carries a product, a transportation, a departure with its
//     sender and a destination with its receiver; none of them is optional
//   - A new order starts in the Created status without a delivery person
package order

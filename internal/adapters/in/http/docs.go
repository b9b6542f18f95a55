// Package http is the inbound REST adapter of the delivery-order service.
//
// Routes (all JSON):
//
//	POST /api/v1/users                         register a user by wallet address
//	POST /api/v1/orders                        create an order, returns {"orderId"}
//	GET  /api/v1/orders?ids=1,2                order details for created or delivered orders
//	GET  /api/v1/orders/matchable?walletAddress=...
//	PUT  /api/v1/orders/:id/delivery-person    assign a delivery person
//	GET  /api/v1/orders/:id/sender-receiver    departure/destination with phones
//	GET  /health
//	GET  /metrics                              Prometheus exposition
//	GET  /swagger/*                            Swagger UI, document at /swagger/doc.json
//
// The API routes are registered through the server generated from
// api/openapi.yml, and every request to them is validated against that
// document before it reaches a handler.
//
// Failures are returned as {"code", "message"}: domain validation errors map
// to 400, missing objects to 404 and anything else to 500.
package http

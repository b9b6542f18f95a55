package dto

// Point is a bare coordinate pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Phone struct {
	Phone string `json:"phone"`
}

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Product struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// Transportation maps a transport mode to its 0/1 flag.
type Transportation map[string]int

// OrderSenderReceiver is the contact view of an order used when a delivery
// person needs to reach both ends.
type OrderSenderReceiver struct {
	ID          int64            `json:"id"`
	Departure   SenderEndpoint   `json:"departure"`
	Destination ReceiverEndpoint `json:"destination"`
}

type SenderEndpoint struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Sender Phone   `json:"sender"`
}

type ReceiverEndpoint struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Receiver Phone   `json:"receiver"`
}

// OrderDetail is the full view of an order for its requester.
type OrderDetail struct {
	OrderID        int64          `json:"orderId"`
	Status         string         `json:"status"`
	Detail         *string        `json:"detail"`
	DeliveryPerson *string        `json:"deliveryPersonWalletAddress"`
	Product        Product        `json:"product"`
	Transportation Transportation `json:"transportation"`
	Departure      Place          `json:"departure"`
	Destination    Place          `json:"destination"`
	Sender         Contact        `json:"sender"`
	Receiver       Contact        `json:"receiver"`
}

// Place is a location with its free-text detail.
type Place struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Detail string  `json:"detail"`
}

// MatchableOrder is what a delivery person sees before taking an order.
// Contacts are left out until the order is assigned.
type MatchableOrder struct {
	OrderID        int64          `json:"orderId"`
	Detail         *string        `json:"detail"`
	Product        Product        `json:"product"`
	Transportation Transportation `json:"transportation"`
	Departure      Point          `json:"departure"`
	Destination    Point          `json:"destination"`
}

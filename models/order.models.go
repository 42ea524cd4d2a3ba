package models

// OrderStatus is the integer lifecycle code stored on an order. The core
// only ever assigns OrderStatusConfirmed at creation; further codes are a
// deployment concern and the status update path accepts any value without
// transition validation.
type OrderStatus int

const OrderStatusConfirmed OrderStatus = 0

// Orders themselves are handled as bson.M documents rather than a closed
// struct: line items are caller-supplied open shapes that carry embedded
// productDetails/bundleDetails after resolution, and a typed model would
// drop unknown fields on the insert round-trip.

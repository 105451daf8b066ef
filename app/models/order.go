package models

// Order statuses. Orders are created out-for-delivery and may only be
// deleted while pending.
const (
	StatusPending        = "pending"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
)

// Statuses lists every valid order status.
var Statuses = []string{StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered}

type Order struct {
	ID           string     `json:"id"`
	DeliverTo    string     `json:"deliverTo"`
	MobileNumber string     `json:"mobileNumber"`
	Status       string     `json:"status"`
	Dishes       []LineItem `json:"dishes"`
}

// LineItem is one dish inside an order, kept exactly as the client sent
// it. The dish id is not checked against the menu; only the quantity is
// validated.
type LineItem map[string]any

// Quantity returns the item's quantity, or 0 when it is not a number.
func (li LineItem) Quantity() int {
	switch n := li["quantity"].(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}

// Clone returns a deep copy of li.
func (li LineItem) Clone() LineItem {
	if li == nil {
		return nil
	}
	return cloneValue(map[string]any(li)).(map[string]any)
}

// cloneValue copies the maps and slices encoding/json produces.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	}
	return v
}

// Clone returns a copy of o that shares no line item memory with it.
func (o Order) Clone() Order {
	if o.Dishes == nil {
		return o
	}
	items := make([]LineItem, len(o.Dishes))
	for i, li := range o.Dishes {
		items[i] = li.Clone()
	}
	o.Dishes = items
	return o
}

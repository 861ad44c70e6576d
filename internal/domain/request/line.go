package request

import "fmt"

// Line is a single resource line item on a request. Lines are created
// together with their request and are immutable afterwards.
type Line struct {
	resourceID uint
	quantity   int
}

func NewLine(resourceID uint, quantity int) (Line, error) {
	if resourceID == 0 {
		return Line{}, fmt.Errorf("resource ID is required")
	}
	if quantity <= 0 {
		return Line{}, fmt.Errorf("quantity must be positive")
	}

	return Line{
		resourceID: resourceID,
		quantity:   quantity,
	}, nil
}

func (l Line) ResourceID() uint {
	return l.resourceID
}

func (l Line) Quantity() int {
	return l.quantity
}

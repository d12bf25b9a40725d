package command

import (
	"fmt"

	orderv1 "github.com/joker6198/stock-project/internal/domain/order/v1"
)

// Format renders a place request as a console line that Parse accepts.
func Format(req orderv1.PlaceRequest) string {
	if req.Kind == orderv1.KindLimit && req.Price != nil {
		return fmt.Sprintf("%s %s %s %s %d", req.Side, req.Symbol, req.Kind, req.Price, req.Qty)
	}
	return fmt.Sprintf("%s %s %s %d", req.Side, req.Symbol, req.Kind, req.Qty)
}

package paystack

import (
	"context"

	usecase "manchy/internal/application/usecase"
)

// Gateway adapts Client to the checkout orchestrator's outbound port.
type Gateway struct {
	Client *Client
}

var _ usecase.PaymentGateway = (*Gateway)(nil)

func NewGateway(client *Client) *Gateway {
	return &Gateway{Client: client}
}

// Initialize submits the payment and maps the gateway response onto the
// orchestrator's session shape.
func (g *Gateway) Initialize(ctx context.Context, in usecase.PaymentInit) (usecase.PaymentSession, error) {
	if g == nil || g.Client == nil {
		return usecase.PaymentSession{}, ErrNotConfigured
	}

	res, err := g.Client.Initialize(ctx, InitializeRequest{
		Email:     in.Email,
		Amount:    in.Amount,
		Reference: in.Reference,
		Metadata:  in.Metadata,
	})
	if err != nil {
		return usecase.PaymentSession{}, err
	}

	return usecase.PaymentSession{
		AuthorizationURL: res.Data.AuthorizationURL,
		AccessCode:       res.Data.AccessCode,
		Reference:        res.Data.Reference,
	}, nil
}

package stripepay

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/savelife-bd/savelife-server/internal/application"
)

// Gateway talks to Stripe Checkout. It implements
// application.CheckoutGateway so services and tests never import Stripe
// types directly.
type Gateway struct {
	api        *client.API
	siteDomain string
}

func New(apiKey, siteDomain string) *Gateway {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &Gateway{api: api, siteDomain: siteDomain}
}

func (g *Gateway) CreateSession(ctx context.Context, in application.CreateSessionInput) (*application.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(in.Currency),
					UnitAmount: stripe.Int64(in.UnitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(in.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		CustomerEmail: stripe.String(in.DonorEmail),
		// {CHECKOUT_SESSION_ID} is substituted by Stripe at redirect time.
		SuccessURL: stripe.String(g.siteDomain + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(g.siteDomain + "/payment-cancelled"),
	}
	params.Context = ctx
	params.AddMetadata("donorName", in.DonorName)
	params.AddMetadata("donorEmail", in.DonorEmail)

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}
	return fromStripe(s), nil
}

func (g *Gateway) GetSession(ctx context.Context, id string) (*application.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	s, err := g.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, err
	}
	return fromStripe(s), nil
}

func fromStripe(s *stripe.CheckoutSession) *application.CheckoutSession {
	out := &application.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	return out
}

var _ application.CheckoutGateway = (*Gateway)(nil)

package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/Kariqs/amexan-eats-api/gateway"
	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/Kariqs/amexan-eats-api/repository"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var minorUnits = decimal.NewFromInt(100)

type CheckoutService struct {
	repos    *repository.Repositories
	gateway  gateway.Client
	verifier *gateway.Verifier
	currency string
	logger   zerolog.Logger
}

func NewCheckoutService(repos *repository.Repositories, client gateway.Client, verifier *gateway.Verifier, currency string, logger zerolog.Logger) *CheckoutService {
	return &CheckoutService{
		repos:    repos,
		gateway:  client,
		verifier: verifier,
		currency: currency,
		logger:   logger,
	}
}

// CheckoutResult is what a checkout produced. Payment is always set; for cash
// on delivery it is already PAID.
type CheckoutResult struct {
	Order      *models.Order
	Payment    *models.Payment
	TotalPrice decimal.Decimal
}

func parsePaymentMethod(method models.PaymentMethod) (models.PaymentMethod, error) {
	switch m := models.PaymentMethod(strings.ToUpper(strings.TrimSpace(string(method)))); m {
	case models.PaymentCOD, models.PaymentOnline:
		return m, nil
	case "":
		return "", errors.Mark(errors.New("please provide payment method"), ErrMissingFields)
	default:
		return "", validationf("unsupported payment method %q", method)
	}
}

// CreateCheckout turns the user's cart into an order and a payment in one
// transaction. Cash on delivery is accepted and paid immediately and the cart
// is cleared. Online orders wait for the gateway and keep the cart until the
// payment is verified.
func (s *CheckoutService) CreateCheckout(ctx context.Context, userID uint, method models.PaymentMethod) (*CheckoutResult, error) {
	method, err := parsePaymentMethod(method)
	if err != nil {
		return nil, err
	}

	var result CheckoutResult
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		cart, err := tx.Carts.FindWithItems(ctx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(cart.Items) == 0) {
			return errors.Mark(errors.New("cart is empty"), ErrEmptyCart)
		}
		if err != nil {
			return errors.Wrap(err, "loading cart")
		}

		first := cart.Items[0]
		if first.Food == nil {
			return notFoundf("food %d in cart no longer exists", first.FoodID)
		}

		total := cart.Total()
		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			items = append(items, models.OrderItem{
				FoodID:   line.FoodID,
				Quantity: line.Quantity,
				Price:    line.Price,
			})
		}

		order := &models.Order{
			UserID:        userID,
			RestaurantID:  first.Food.RestaurantID,
			TotalAmount:   total,
			Status:        models.OrderPending,
			PaymentStatus: models.PaymentPending,
			OrderItems:    items,
		}
		if err := tx.Orders.Create(ctx, order); err != nil {
			return errors.Wrap(err, "creating order")
		}

		payment := &models.Payment{
			UserID:   userID,
			OrderID:  order.ID,
			Method:   method,
			Amount:   total,
			Currency: s.currency,
			Status:   models.PaymentPending,
		}
		if method == models.PaymentCOD {
			payment.Status = models.PaymentPaid
		}
		if err := tx.Payments.Create(ctx, payment); err != nil {
			return errors.Wrap(err, "creating payment")
		}

		if method == models.PaymentCOD {
			err := tx.Orders.UpdateFields(ctx, order.ID, map[string]any{
				"status":         models.OrderAccepted,
				"payment_status": models.PaymentPaid,
			})
			if err != nil {
				return errors.Wrap(err, "accepting order")
			}
			order.Status = models.OrderAccepted
			order.PaymentStatus = models.PaymentPaid

			if err := clearCart(ctx, tx, cart.ID); err != nil {
				return err
			}
		}

		result = CheckoutResult{Order: order, Payment: payment, TotalPrice: total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Uint("user_id", userID).
		Uint("order_id", result.Order.ID).
		Str("method", string(method)).
		Str("total", result.TotalPrice.StringFixed(2)).
		Msg("checkout created")
	return &result, nil
}

// CreateGatewayOrder asks the payment gateway for an order sized to the
// order's total. The payment stays PENDING until VerifyPayment succeeds.
func (s *CheckoutService) CreateGatewayOrder(ctx context.Context, userID, orderID uint) (*gateway.Order, *models.Order, error) {
	order, err := s.repos.Orders.FindForUser(ctx, userID, orderID)
	if err != nil {
		return nil, nil, lookup(err, "order not found")
	}
	payment, err := s.repos.Payments.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, nil, lookup(err, "payment for order %d not found", order.ID)
	}
	if payment.Method != models.PaymentOnline {
		return nil, nil, validationf("order is not an online payment")
	}
	if payment.Status == models.PaymentPaid {
		return nil, nil, conflictf("order is already paid")
	}

	gatewayOrder, err := s.gateway.CreateOrder(ctx, gateway.OrderRequest{
		Amount:   order.TotalAmount.Mul(minorUnits).Round(0).IntPart(),
		Currency: payment.Currency,
		Receipt:  strconv.FormatUint(uint64(order.ID), 10),
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "creating gateway order")
	}

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Orders.UpdateFields(ctx, order.ID, map[string]any{"gateway_order_id": gatewayOrder.ID}); err != nil {
			return err
		}
		return tx.Payments.UpdateFields(ctx, payment.ID, map[string]any{
			"gateway_order_id": gatewayOrder.ID,
			"payment_gateway":  gateway.Name,
			"gateway_payload":  datatypes.JSON(gatewayOrder.Raw),
		})
	})
	if err != nil {
		// the remote order exists but is not recorded locally
		s.logger.Error().Err(err).
			Uint("order_id", order.ID).
			Uint("payment_id", payment.ID).
			Str("gateway_order_id", gatewayOrder.ID).
			Msg("gateway order needs reconciliation")
		return nil, nil, errors.Wrap(err, "recording gateway order")
	}
	order.GatewayOrderID = gatewayOrder.ID

	s.logger.Info().
		Uint("order_id", order.ID).
		Str("gateway_order_id", gatewayOrder.ID).
		Int64("amount", gatewayOrder.Amount).
		Msg("gateway order created")
	return gatewayOrder, order, nil
}

// VerifyPayment checks the gateway signature for a payment and, when valid,
// marks the payment PAID, accepts the order and clears the user's cart.
// Repeating a successful verification with the same signature is a no-op.
func (s *CheckoutService) VerifyPayment(ctx context.Context, userID uint, data models.VerifyPaymentData) (*models.Payment, error) {
	if data.PaymentID == "" || data.GatewayOrderID == "" || data.GatewaySignature == "" {
		return nil, errors.Mark(errors.New("payment id, gateway order id and signature are required"), ErrMissingFields)
	}
	id, err := strconv.ParseUint(data.PaymentID, 10, 64)
	if err != nil {
		return nil, validationf("invalid payment id")
	}

	payment, err := s.repos.Payments.FindByID(ctx, uint(id))
	if err != nil {
		return nil, lookup(err, "payment not found")
	}
	if payment.UserID != userID {
		return nil, notFoundf("payment not found")
	}
	if payment.Method != models.PaymentOnline {
		return nil, validationf("payment is not an online payment")
	}

	if !s.verifier.Verify(data.GatewayOrderID, data.PaymentID, data.GatewaySignature) {
		s.logger.Warn().Uint("payment_id", payment.ID).Msg("payment signature mismatch")
		return nil, errors.Mark(errors.New("invalid payment signature"), ErrInvalidSignature)
	}
	if payment.GatewayOrderID != "" && payment.GatewayOrderID != data.GatewayOrderID {
		s.logger.Warn().Uint("payment_id", payment.ID).Msg("payment signed for a different gateway order")
		return nil, errors.Mark(errors.New("signature does not belong to this payment"), ErrInvalidSignature)
	}

	if payment.Status == models.PaymentPaid && payment.GatewaySignature == data.GatewaySignature {
		return payment, nil
	}

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		err := tx.Payments.UpdateFields(ctx, payment.ID, map[string]any{
			"status":             models.PaymentPaid,
			"payment_gateway":    gateway.Name,
			"gateway_order_id":   data.GatewayOrderID,
			"gateway_payment_id": data.PaymentID,
			"gateway_signature":  data.GatewaySignature,
		})
		if err != nil {
			return errors.Wrap(err, "marking payment paid")
		}
		err = tx.Orders.UpdateFields(ctx, payment.OrderID, map[string]any{
			"status":         models.OrderAccepted,
			"payment_status": models.PaymentPaid,
		})
		if err != nil {
			return errors.Wrap(err, "accepting order")
		}

		cart, err := tx.Carts.FindByUserID(ctx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "finding cart")
		}
		return clearCart(ctx, tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	verified, err := s.repos.Payments.FindByID(ctx, payment.ID)
	if err != nil {
		return nil, lookup(err, "payment not found")
	}
	s.logger.Info().Uint("payment_id", verified.ID).Uint("order_id", verified.OrderID).Msg("payment verified")
	return verified, nil
}

func (s *CheckoutService) OrderHistory(ctx context.Context, userID uint) ([]models.Order, error) {
	orders, err := s.repos.Orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "listing orders")
	}
	return orders, nil
}

func (s *CheckoutService) PaymentHistory(ctx context.Context, userID uint) ([]models.Payment, error) {
	payments, err := s.repos.Payments.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "listing payments")
	}
	return payments, nil
}

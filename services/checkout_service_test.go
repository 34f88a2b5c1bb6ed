package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/Kariqs/amexan-eats-api/gateway"
	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/Kariqs/amexan-eats-api/repository"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const testPaymentSecret = "s"

type CheckoutServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	db         *gorm.DB
	repos      *repository.Repositories
	gateway    *fakeGateway
	verifier   *gateway.Verifier
	svc        *CheckoutService
	carts      *CartService
	user       *models.User
	restaurant *models.Restaurant
}

func TestCheckoutServiceSuite(t *testing.T) {
	suite.Run(t, new(CheckoutServiceTestSuite))
}

func (s *CheckoutServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = newTestDB(s.T())
	s.repos = repository.New(s.db)
	s.gateway = &fakeGateway{orderID: "ord_1"}
	s.verifier = gateway.NewVerifier(testPaymentSecret)
	s.svc = NewCheckoutService(s.repos, s.gateway, s.verifier, "INR", zerolog.Nop())
	s.carts = NewCartService(s.repos)
	s.user = createUser(s.T(), s.repos, models.RoleUser)
	s.restaurant = createRestaurant(s.T(), s.repos, createUser(s.T(), s.repos, models.RoleOwner))
}

func (s *CheckoutServiceTestSuite) addToCart(price string, qty int) *models.Food {
	food := createFood(s.T(), s.repos, s.restaurant, price)
	_, _, err := s.carts.AddItem(s.ctx, s.user.ID, models.AddCartItemData{FoodID: food.ID, Quantity: qty})
	s.Require().NoError(err)
	return food
}

func (s *CheckoutServiceTestSuite) countRows(model any) int64 {
	var count int64
	s.Require().NoError(s.db.Model(model).Count(&count).Error)
	return count
}

// onlineCheckout checks out online and issues the gateway order.
func (s *CheckoutServiceTestSuite) onlineCheckout() *CheckoutResult {
	s.addToCart("250.00", 2)
	result, err := s.svc.CreateCheckout(s.ctx, s.user.ID, models.PaymentOnline)
	s.Require().NoError(err)
	_, _, err = s.svc.CreateGatewayOrder(s.ctx, s.user.ID, result.Order.ID)
	s.Require().NoError(err)
	return result
}

func (s *CheckoutServiceTestSuite) TestCashOnDeliveryCheckout() {
	food := s.addToCart("100", 2)

	result, err := s.svc.CreateCheckout(s.ctx, s.user.ID, models.PaymentCOD)
	s.Require().NoError(err)

	s.True(result.TotalPrice.Equal(decimal.NewFromInt(200)))
	s.Equal(models.OrderAccepted, result.Order.Status)
	s.Equal(models.PaymentPaid, result.Order.PaymentStatus)
	s.Equal(models.PaymentPaid, result.Payment.Status)
	s.Equal("INR", result.Payment.Currency)
	s.Equal(s.restaurant.ID, result.Order.RestaurantID)

	order, err := s.repos.Orders.FindByID(s.ctx, result.Order.ID)
	s.Require().NoError(err)
	s.True(order.TotalAmount.Equal(decimal.NewFromInt(200)))
	s.Equal(models.OrderAccepted, order.Status)
	s.Require().Len(order.OrderItems, 1)
	s.Equal(food.ID, order.OrderItems[0].FoodID)
	s.Equal(2, order.OrderItems[0].Quantity)
	s.True(order.OrderItems[0].Price.Equal(decimal.NewFromInt(100)))

	payment, err := s.repos.Payments.FindByOrderID(s.ctx, order.ID)
	s.Require().NoError(err)
	s.Equal(models.PaymentPaid, payment.Status)
	s.Equal(models.PaymentCOD, payment.Method)

	_, err = s.repos.Carts.FindByUserID(s.ctx, s.user.ID)
	assertMarked(s.T(), err, gorm.ErrRecordNotFound)
	s.Zero(s.countRows(&models.CartItem{}))
}

func (s *CheckoutServiceTestSuite) TestTotalIsSumOfLinesToTheCent() {
	s.addToCart("19.99", 3)
	s.addToCart("0.10", 7)
	s.addToCart("123.45", 1)

	result, err := s.svc.CreateCheckout(s.ctx, s.user.ID, models.PaymentCOD)
	s.Require().NoError(err)

	s.Equal("184.12", result.TotalPrice.StringFixed(2))
	order, err := s.repos.Orders.FindByID(s.ctx, result.Order.ID)
	s.Require().NoError(err)
	s.Equal("184.12", order.TotalAmount.StringFixed(2))

	sum := decimal.Zero
	for _, item := range order.OrderItems {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	s.True(sum.Equal(order.TotalAmount))
}

func (s *CheckoutServiceTestSuite) TestEmptyOrMissingCartFails() {
	_, err := s.svc.CreateCheckout(s.ctx, s.user.ID, models.PaymentCOD)
	assertMarked(s.T(), err, ErrEmptyCart)

	s.Require().NoError(s.repos.Carts.Create(s.ctx, &models.Cart{UserID: s.user.ID}))
	_, err = s.svc.CreateCheckout(s.ctx, s.user.ID, models.PaymentOnline)
	assertMarked(s.T(), err, ErrEmptyCart)

	s.Zero(s.countRows(&models.Order{}))
	s.Zero(s.countRows(&models.Payment{}))
}

func (s *CheckoutServiceTestSuite) TestInvalidPaymentMethod() {
	s.addToCart("10", 1)

	_, err := s.svc.CreateCheckout(s.ctx, s.user.ID, "BITCOIN")
	assertMarked(s.T(), err, ErrValidation)
	_, err = s.svc.CreateCheckout(s.ctx, s.user.ID, "")
	assertMarked(s.T(), err, ErrMissingFields)
	s.Zero(s.countRows(&models.Order{}))
}

func (s *CheckoutServiceTestSuite) TestOnlineCheckoutLeavesPaymentPending() {
	s.addToCart("250.00", 2)

	result, err := s.svc.CreateCheckout(s.ctx, s.user.ID, models.PaymentOnline)
	s.Require().NoError(err)

	s.Equal(models.OrderPending, result.Order.Status)
	s.Equal(models.PaymentPending, result.Payment.Status)
	s.True(result.TotalPrice.Equal(decimal.NewFromInt(500)))
	s.Empty(s.gateway.requests)

	cart, err := s.repos.Carts.FindWithItems(s.ctx, s.user.ID)
	s.Require().NoError(err)
	s.Len(cart.Items, 1)
}

// The gateway order step must not mark anything paid; only verification does.
func (s *CheckoutServiceTestSuite) TestCreateGatewayOrderKeepsPaymentPending() {
	s.addToCart("250.50", 2)
	result, err := s.svc.CreateCheckout(s.ctx, s.user.ID, models.PaymentOnline)
	s.Require().NoError(err)

	gwOrder, order, err := s.svc.CreateGatewayOrder(s.ctx, s.user.ID, result.Order.ID)
	s.Require().NoError(err)
	s.Equal("ord_1", gwOrder.ID)
	s.Equal("ord_1", order.GatewayOrderID)

	s.Require().Len(s.gateway.requests, 1)
	req := s.gateway.requests[0]
	s.Equal(int64(50100), req.Amount)
	s.Equal("INR", req.Currency)
	s.Equal(strconv.FormatUint(uint64(result.Order.ID), 10), req.Receipt)

	payment, err := s.repos.Payments.FindByID(s.ctx, result.Payment.ID)
	s.Require().NoError(err)
	s.Equal(models.PaymentPending, payment.Status)
	s.Equal("ord_1", payment.GatewayOrderID)
	s.Equal(gateway.Name, payment.PaymentGateway)
	s.JSONEq(`{"id":"ord_1","status":"created"}`, string(payment.GatewayPayload))

	stored, err := s.repos.Orders.FindByID(s.ctx, result.Order.ID)
	s.Require().NoError(err)
	s.Equal(models.PaymentPending, stored.PaymentStatus)
	s.Equal(models.OrderPending, stored.Status)
}

func (s *CheckoutServiceTestSuite) TestCreateGatewayOrderErrors() {
	_, _, err := s.svc.CreateGatewayOrder(s.ctx, s.user.ID, 4242)
	assertMarked(s.T(), err, ErrNotFound)

	s.addToCart("10", 1)
	cod, err := s.svc.CreateCheckout(s.ctx, s.user.ID, models.PaymentCOD)
	s.Require().NoError(err)
	_, _, err = s.svc.CreateGatewayOrder(s.ctx, s.user.ID, cod.Order.ID)
	assertMarked(s.T(), err, ErrValidation)

	s.addToCart("10", 1)
	online, err := s.svc.CreateCheckout(s.ctx, s.user.ID, models.PaymentOnline)
	s.Require().NoError(err)

	stranger := createUser(s.T(), s.repos, models.RoleUser)
	_, _, err = s.svc.CreateGatewayOrder(s.ctx, stranger.ID, online.Order.ID)
	assertMarked(s.T(), err, ErrNotFound)

	s.gateway.err = errors.New("gateway down")
	_, _, err = s.svc.CreateGatewayOrder(s.ctx, s.user.ID, online.Order.ID)
	s.Require().Error(err)
	s.False(errors.Is(err, ErrNotFound), "%v", err)
	payment, err := s.repos.Payments.FindByID(s.ctx, online.Payment.ID)
	s.Require().NoError(err)
	s.Empty(payment.GatewayOrderID)
}

func (s *CheckoutServiceTestSuite) TestVerifyPaymentMarksPaidAndClearsCart() {
	result := s.onlineCheckout()
	paymentID := strconv.FormatUint(uint64(result.Payment.ID), 10)

	payment, err := s.svc.VerifyPayment(s.ctx, s.user.ID, models.VerifyPaymentData{
		PaymentID:        paymentID,
		GatewayOrderID:   "ord_1",
		GatewaySignature: s.verifier.Sign("ord_1", paymentID),
	})
	s.Require().NoError(err)
	s.Equal(models.PaymentPaid, payment.Status)
	s.Equal(gateway.Name, payment.PaymentGateway)
	s.Equal(paymentID, payment.GatewayPaymentID)
	s.Equal(s.verifier.Sign("ord_1", paymentID), payment.GatewaySignature)

	order, err := s.repos.Orders.FindByID(s.ctx, result.Order.ID)
	s.Require().NoError(err)
	s.Equal(models.OrderAccepted, order.Status)
	s.Equal(models.PaymentPaid, order.PaymentStatus)

	_, err = s.repos.Carts.FindByUserID(s.ctx, s.user.ID)
	assertMarked(s.T(), err, gorm.ErrRecordNotFound)
}

func (s *CheckoutServiceTestSuite) TestVerifyPaymentIsIdempotent() {
	result := s.onlineCheckout()
	paymentID := strconv.FormatUint(uint64(result.Payment.ID), 10)
	data := models.VerifyPaymentData{
		PaymentID:        paymentID,
		GatewayOrderID:   "ord_1",
		GatewaySignature: s.verifier.Sign("ord_1", paymentID),
	}

	first, err := s.svc.VerifyPayment(s.ctx, s.user.ID, data)
	s.Require().NoError(err)

	// a new cart after payment must survive a repeated verification
	s.addToCart("5", 1)

	second, err := s.svc.VerifyPayment(s.ctx, s.user.ID, data)
	s.Require().NoError(err)
	s.Equal(models.PaymentPaid, second.Status)
	s.True(first.UpdatedAt.Equal(second.UpdatedAt))

	cart, err := s.repos.Carts.FindWithItems(s.ctx, s.user.ID)
	s.Require().NoError(err)
	s.Len(cart.Items, 1)
}

func (s *CheckoutServiceTestSuite) TestVerifyPaymentRejectsTamperedSignature() {
	result := s.onlineCheckout()
	paymentID := strconv.FormatUint(uint64(result.Payment.ID), 10)
	valid := s.verifier.Sign("ord_1", paymentID)

	cases := []models.VerifyPaymentData{
		{PaymentID: paymentID, GatewayOrderID: "ord_1", GatewaySignature: tamper(valid)},
		{PaymentID: paymentID, GatewayOrderID: "ord_1", GatewaySignature: gateway.NewVerifier("other").Sign("ord_1", paymentID)},
		// correctly signed, but for a gateway order this payment never had
		{PaymentID: paymentID, GatewayOrderID: "ord_2", GatewaySignature: s.verifier.Sign("ord_2", paymentID)},
	}
	for _, data := range cases {
		_, err := s.svc.VerifyPayment(s.ctx, s.user.ID, data)
		assertMarked(s.T(), err, ErrInvalidSignature)
	}

	payment, err := s.repos.Payments.FindByID(s.ctx, result.Payment.ID)
	s.Require().NoError(err)
	s.Equal(models.PaymentPending, payment.Status)
	s.Empty(payment.GatewaySignature)
}

func (s *CheckoutServiceTestSuite) TestVerifyPaymentInputErrors() {
	result := s.onlineCheckout()
	paymentID := strconv.FormatUint(uint64(result.Payment.ID), 10)
	signature := s.verifier.Sign("ord_1", paymentID)

	_, err := s.svc.VerifyPayment(s.ctx, s.user.ID, models.VerifyPaymentData{PaymentID: paymentID, GatewayOrderID: "ord_1"})
	assertMarked(s.T(), err, ErrMissingFields)

	_, err = s.svc.VerifyPayment(s.ctx, s.user.ID, models.VerifyPaymentData{
		PaymentID: "9999", GatewayOrderID: "ord_1", GatewaySignature: s.verifier.Sign("ord_1", "9999"),
	})
	assertMarked(s.T(), err, ErrNotFound)

	stranger := createUser(s.T(), s.repos, models.RoleUser)
	_, err = s.svc.VerifyPayment(s.ctx, stranger.ID, models.VerifyPaymentData{
		PaymentID: paymentID, GatewayOrderID: "ord_1", GatewaySignature: signature,
	})
	assertMarked(s.T(), err, ErrNotFound)
}

func (s *CheckoutServiceTestSuite) TestHistoriesAreScopedAndNewestFirst() {
	s.addToCart("10", 1)
	first, err := s.svc.CreateCheckout(s.ctx, s.user.ID, models.PaymentCOD)
	s.Require().NoError(err)
	s.addToCart("20", 1)
	second, err := s.svc.CreateCheckout(s.ctx, s.user.ID, models.PaymentOnline)
	s.Require().NoError(err)

	orders, err := s.svc.OrderHistory(s.ctx, s.user.ID)
	s.Require().NoError(err)
	s.Require().Len(orders, 2)
	s.Equal(second.Order.ID, orders[0].ID)
	s.Equal(first.Order.ID, orders[1].ID)
	s.Require().NotNil(orders[0].Payment)
	s.Equal(models.PaymentOnline, orders[0].Payment.Method)

	payments, err := s.svc.PaymentHistory(s.ctx, s.user.ID)
	s.Require().NoError(err)
	s.Require().Len(payments, 2)
	s.Equal(second.Payment.ID, payments[0].ID)

	stranger := createUser(s.T(), s.repos, models.RoleUser)
	orders, err = s.svc.OrderHistory(s.ctx, stranger.ID)
	s.Require().NoError(err)
	s.Empty(orders)
}

func tamper(signature string) string {
	last := byte('0')
	if signature[len(signature)-1] == '0' {
		last = '1'
	}
	return signature[:len(signature)-1] + string(last)
}

func TestParsePaymentMethod(t *testing.T) {
	method, err := parsePaymentMethod(" cod ")
	require.NoError(t, err)
	require.Equal(t, models.PaymentCOD, method)

	method, err = parsePaymentMethod("online")
	require.NoError(t, err)
	require.Equal(t, models.PaymentOnline, method)
}

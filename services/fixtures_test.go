package services

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/Kariqs/amexan-eats-api/auth"
	"github.com/Kariqs/amexan-eats-api/gateway"
	"github.com/Kariqs/amexan-eats-api/initializers"
	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/Kariqs/amexan-eats-api/repository"
	"github.com/Kariqs/amexan-eats-api/utils"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := initializers.ConnectToDB(&initializers.Config{
		DBDriver: "sqlite",
		DBSource: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, initializers.SyncDatabase(db))
	return db
}

// assertMarked checks err against a sentinel the way the controllers do.
// Service errors carry sentinels as marks, which the stdlib errors.Is and
// assert.ErrorIs cannot see.
func assertMarked(t *testing.T, err, target error) bool {
	t.Helper()
	return assert.Truef(t, errors.Is(err, target), "expected %q in %v", target, err)
}

func newTestRepos(t *testing.T) *repository.Repositories {
	return repository.New(newTestDB(t))
}

func createUser(t *testing.T, repos *repository.Repositories, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Test " + string(role),
		Email:    uuid.NewString() + "@example.com",
		Phone:    "0700000000",
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, repos.Users.Create(context.Background(), user))
	return user
}

func createRestaurant(t *testing.T, repos *repository.Repositories, owner *models.User) *models.Restaurant {
	t.Helper()
	restaurant := &models.Restaurant{Name: "Spice Hub", About: "Curries", Phone: "0711111111", OwnerID: owner.ID}
	require.NoError(t, repos.Restaurants.Create(context.Background(), restaurant))
	return restaurant
}

func createFood(t *testing.T, repos *repository.Repositories, restaurant *models.Restaurant, price string) *models.Food {
	t.Helper()
	food := &models.Food{
		Name:         "Paneer Tikka",
		Description:  "Grilled paneer",
		Price:        decimal.RequireFromString(price),
		RestaurantID: restaurant.ID,
	}
	require.NoError(t, repos.Foods.Create(context.Background(), food))
	return food
}

func identityOf(user *models.User) auth.Identity {
	return auth.Identity{UserID: user.ID, Email: user.Email, Role: user.Role}
}

type fakeGateway struct {
	mu       sync.Mutex
	requests []gateway.OrderRequest
	orderID  string
	err      error
}

func (g *fakeGateway) CreateOrder(_ context.Context, req gateway.OrderRequest) (*gateway.Order, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	if g.err != nil {
		return nil, g.err
	}
	return &gateway.Order{
		ID:       g.orderID,
		Entity:   "order",
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Status:   "created",
		Raw:      []byte(`{"id":"` + g.orderID + `","status":"created"}`),
	}, nil
}

type sentEmail struct {
	to      string
	subject string
	data    utils.EmailData
}

type fakeMailer struct {
	sent []sentEmail
	err  error
}

func (m *fakeMailer) SendEmail(emailTo, emailSubject string, data utils.EmailData) error {
	m.sent = append(m.sent, sentEmail{to: emailTo, subject: emailSubject, data: data})
	return m.err
}

type fakeImageStore struct {
	uploads []string
	err     error
}

func (s *fakeImageStore) Upload(_ context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if _, err := io.ReadAll(body); err != nil {
		return "", err
	}
	s.uploads = append(s.uploads, folder+"/"+filename)
	return "https://cdn.example.com/" + folder + "/" + filename, nil
}

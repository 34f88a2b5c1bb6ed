package services

import (
	"context"

	"github.com/Kariqs/amexan-eats-api/auth"
	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/Kariqs/amexan-eats-api/repository"
	"github.com/cockroachdb/errors"
)

type AddressService struct {
	repos *repository.Repositories
}

func NewAddressService(repos *repository.Repositories) *AddressService {
	return &AddressService{repos: repos}
}

var errIncompleteAddress = errors.Mark(errors.New("please provide all the fields"), ErrMissingFields)

func (s *AddressService) CreateUserAddress(ctx context.Context, userID uint, in models.AddressInput) (*models.UserAddress, error) {
	if !in.Complete() {
		return nil, errIncompleteAddress
	}
	if _, err := s.repos.Users.FindByID(ctx, userID); err != nil {
		return nil, lookup(err, "user not found")
	}

	address := &models.UserAddress{UserID: userID}
	in.Apply(&address.Address)
	if err := s.repos.Addresses.CreateUserAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "creating user address")
	}
	return address, nil
}

func (s *AddressService) UpdateUserAddress(ctx context.Context, userID, id uint, in models.AddressInput) (*models.UserAddress, error) {
	address, err := s.ownUserAddress(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	in.Apply(&address.Address)
	if err := s.repos.Addresses.SaveUserAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "updating user address")
	}
	return address, nil
}

func (s *AddressService) DeleteUserAddress(ctx context.Context, userID, id uint) error {
	if _, err := s.ownUserAddress(ctx, userID, id); err != nil {
		return err
	}
	return errors.Wrap(s.repos.Addresses.DeleteUserAddress(ctx, id), "deleting user address")
}

func (s *AddressService) ListUserAddresses(ctx context.Context, userID uint) ([]models.UserAddress, error) {
	addresses, err := s.repos.Addresses.ListUserAddresses(ctx, userID)
	return addresses, errors.Wrap(err, "listing user addresses")
}

func (s *AddressService) ownUserAddress(ctx context.Context, userID, id uint) (*models.UserAddress, error) {
	address, err := s.repos.Addresses.FindUserAddress(ctx, id)
	if err != nil {
		return nil, lookup(err, "user address not found")
	}
	// someone else's address is reported as missing
	if address.UserID != userID {
		return nil, notFoundf("user address not found")
	}
	return address, nil
}

func (s *AddressService) CreateRestaurantAddress(ctx context.Context, caller auth.Identity, restaurantID uint, in models.AddressInput) (*models.RestaurantAddress, error) {
	if !in.Complete() {
		return nil, errIncompleteAddress
	}
	if _, err := s.managedRestaurant(ctx, caller, restaurantID); err != nil {
		return nil, err
	}

	_, err := s.repos.Addresses.FindRestaurantAddress(ctx, restaurantID)
	if err == nil {
		return nil, conflictf("restaurant already has an address")
	}
	if err := lookup(err, "restaurant address not found"); !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	address := &models.RestaurantAddress{RestaurantID: restaurantID}
	in.Apply(&address.Address)
	if err := s.repos.Addresses.SaveRestaurantAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "creating restaurant address")
	}
	return address, nil
}

func (s *AddressService) UpdateRestaurantAddress(ctx context.Context, caller auth.Identity, restaurantID uint, in models.AddressInput) (*models.RestaurantAddress, error) {
	if _, err := s.managedRestaurant(ctx, caller, restaurantID); err != nil {
		return nil, err
	}
	address, err := s.repos.Addresses.FindRestaurantAddress(ctx, restaurantID)
	if err != nil {
		return nil, lookup(err, "restaurant address not found")
	}
	in.Apply(&address.Address)
	if err := s.repos.Addresses.SaveRestaurantAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "updating restaurant address")
	}
	return address, nil
}

func (s *AddressService) DeleteRestaurantAddress(ctx context.Context, caller auth.Identity, restaurantID uint) error {
	if _, err := s.managedRestaurant(ctx, caller, restaurantID); err != nil {
		return err
	}
	if _, err := s.repos.Addresses.FindRestaurantAddress(ctx, restaurantID); err != nil {
		return lookup(err, "restaurant address not found")
	}
	return errors.Wrap(s.repos.Addresses.DeleteRestaurantAddress(ctx, restaurantID), "deleting restaurant address")
}

func (s *AddressService) GetRestaurantAddress(ctx context.Context, restaurantID uint) (*models.RestaurantAddress, error) {
	address, err := s.repos.Addresses.FindRestaurantAddress(ctx, restaurantID)
	if err != nil {
		return nil, lookup(err, "restaurant address not found")
	}
	return address, nil
}

func (s *AddressService) managedRestaurant(ctx context.Context, caller auth.Identity, restaurantID uint) (*models.Restaurant, error) {
	restaurant, err := s.repos.Restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, lookup(err, "restaurant does not exist")
	}
	if !caller.CanManage(restaurant.OwnerID) {
		return nil, forbiddenf("only the restaurant owner can change this restaurant")
	}
	return restaurant, nil
}

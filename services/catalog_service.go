package services

import (
	"context"
	"io"
	"strings"

	"github.com/Kariqs/amexan-eats-api/auth"
	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/Kariqs/amexan-eats-api/repository"
	"github.com/Kariqs/amexan-eats-api/storage"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

const (
	restaurantImageFolder = "restaurants"
	foodImageFolder       = "foods"
)

// ImageUpload is an image attached to a create or update request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type CatalogService struct {
	repos  *repository.Repositories
	images storage.ImageStore
}

func NewCatalogService(repos *repository.Repositories, images storage.ImageStore) *CatalogService {
	return &CatalogService{repos: repos, images: images}
}

func (s *CatalogService) upload(ctx context.Context, folder string, image *ImageUpload) (string, error) {
	if image == nil {
		return "", nil
	}
	if s.images == nil {
		return "", errors.New("image storage is not configured")
	}
	url, err := s.images.Upload(ctx, folder, image.Filename, image.ContentType, image.Body)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			return "", validationf("only image uploads are allowed")
		}
		return "", errors.Wrap(err, "uploading image")
	}
	return url, nil
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func (s *CatalogService) CreateRestaurant(ctx context.Context, caller auth.Identity, in models.RestaurantInput, image *ImageUpload) (*models.Restaurant, error) {
	if !present(in.Name) || !present(in.About) || !present(in.Phone) {
		return nil, errors.Mark(errors.New("please provide all the required fields"), ErrMissingFields)
	}
	if _, err := s.repos.Users.FindByID(ctx, caller.UserID); err != nil {
		return nil, lookup(err, "user does not exist")
	}

	imageURL, err := s.upload(ctx, restaurantImageFolder, image)
	if err != nil {
		return nil, err
	}

	restaurant := &models.Restaurant{
		Name:     *in.Name,
		About:    *in.About,
		Phone:    *in.Phone,
		ImageUrl: imageURL,
		Cuisines: in.Cuisines,
		OwnerID:  caller.UserID,
	}
	if err := s.repos.Restaurants.Create(ctx, restaurant); err != nil {
		return nil, errors.Wrap(err, "creating restaurant")
	}
	return restaurant, nil
}

func (s *CatalogService) UpdateRestaurant(ctx context.Context, caller auth.Identity, id uint, in models.RestaurantInput, image *ImageUpload) (*models.Restaurant, error) {
	restaurant, err := s.managedRestaurant(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if present(in.Name) {
		restaurant.Name = *in.Name
	}
	if present(in.About) {
		restaurant.About = *in.About
	}
	if present(in.Phone) {
		restaurant.Phone = *in.Phone
	}
	if in.Cuisines != nil {
		restaurant.Cuisines = in.Cuisines
	}
	if image != nil {
		if restaurant.ImageUrl, err = s.upload(ctx, restaurantImageFolder, image); err != nil {
			return nil, err
		}
	}

	if err := s.repos.Restaurants.Save(ctx, restaurant); err != nil {
		return nil, errors.Wrap(err, "updating restaurant")
	}
	return restaurant, nil
}

// DeleteRestaurant removes the restaurant with its foods and address.
func (s *CatalogService) DeleteRestaurant(ctx context.Context, caller auth.Identity, id uint) error {
	if _, err := s.managedRestaurant(ctx, caller, id); err != nil {
		return err
	}
	return s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Foods.DeleteByRestaurant(ctx, id); err != nil {
			return errors.Wrap(err, "deleting restaurant foods")
		}
		if err := tx.Addresses.DeleteRestaurantAddress(ctx, id); err != nil {
			return errors.Wrap(err, "deleting restaurant address")
		}
		return errors.Wrap(tx.Restaurants.Delete(ctx, id), "deleting restaurant")
	})
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	restaurant, err := s.repos.Restaurants.FindDetail(ctx, id)
	if err != nil {
		return nil, lookup(err, "restaurant does not exist")
	}
	return restaurant, nil
}

func (s *CatalogService) ListRestaurants(ctx context.Context, params ListParams) (*Page[models.Restaurant], error) {
	q, err := params.query(restaurantSortColumns)
	if err != nil {
		return nil, err
	}
	restaurants, total, err := s.repos.Restaurants.List(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "listing restaurants")
	}
	return &Page[models.Restaurant]{Items: restaurants, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func (s *CatalogService) managedRestaurant(ctx context.Context, caller auth.Identity, id uint) (*models.Restaurant, error) {
	restaurant, err := s.repos.Restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, lookup(err, "restaurant does not exist")
	}
	if !caller.CanManage(restaurant.OwnerID) {
		return nil, forbiddenf("only the restaurant owner can change this restaurant")
	}
	return restaurant, nil
}

func validateFoodPrices(price, discount decimal.Decimal) error {
	if !price.IsPositive() {
		return validationf("price must be greater than zero")
	}
	if discount.IsNegative() {
		return validationf("discount price cannot be negative")
	}
	if discount.GreaterThan(price) {
		return validationf("discount price cannot exceed price")
	}
	return nil
}

func (s *CatalogService) CreateFood(ctx context.Context, caller auth.Identity, restaurantID uint, in models.FoodInput, image *ImageUpload) (*models.Food, error) {
	if !present(in.Name) || !present(in.Description) || in.Price == nil {
		return nil, errors.Mark(errors.New("please provide all the required fields"), ErrMissingFields)
	}
	if _, err := s.managedRestaurant(ctx, caller, restaurantID); err != nil {
		return nil, err
	}

	food := &models.Food{
		Name:         *in.Name,
		Description:  *in.Description,
		Price:        in.Price.Round(2),
		RestaurantID: restaurantID,
	}
	if in.DiscountPrice != nil {
		food.DiscountPrice = in.DiscountPrice.Round(2)
	}
	if err := validateFoodPrices(food.Price, food.DiscountPrice); err != nil {
		return nil, err
	}

	imageURL, err := s.upload(ctx, foodImageFolder, image)
	if err != nil {
		return nil, err
	}
	food.ImageUrl = imageURL

	if err := s.repos.Foods.Create(ctx, food); err != nil {
		return nil, errors.Wrap(err, "creating food")
	}
	return food, nil
}

func (s *CatalogService) UpdateFood(ctx context.Context, caller auth.Identity, id uint, in models.FoodInput, image *ImageUpload) (*models.Food, error) {
	food, err := s.managedFood(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if present(in.Name) {
		food.Name = *in.Name
	}
	if present(in.Description) {
		food.Description = *in.Description
	}
	if in.Price != nil {
		food.Price = in.Price.Round(2)
	}
	if in.DiscountPrice != nil {
		food.DiscountPrice = in.DiscountPrice.Round(2)
	}
	if err := validateFoodPrices(food.Price, food.DiscountPrice); err != nil {
		return nil, err
	}
	if image != nil {
		if food.ImageUrl, err = s.upload(ctx, foodImageFolder, image); err != nil {
			return nil, err
		}
	}

	if err := s.repos.Foods.Save(ctx, food); err != nil {
		return nil, errors.Wrap(err, "updating food")
	}
	return food, nil
}

func (s *CatalogService) DeleteFood(ctx context.Context, caller auth.Identity, id uint) error {
	if _, err := s.managedFood(ctx, caller, id); err != nil {
		return err
	}
	return errors.Wrap(s.repos.Foods.Delete(ctx, id), "deleting food")
}

func (s *CatalogService) GetFood(ctx context.Context, id uint) (*models.Food, error) {
	food, err := s.repos.Foods.FindDetail(ctx, id)
	if err != nil {
		return nil, lookup(err, "food does not exist")
	}
	return food, nil
}

func (s *CatalogService) ListFoods(ctx context.Context, params ListParams) (*Page[models.Food], error) {
	q, err := params.query(foodSortColumns)
	if err != nil {
		return nil, err
	}
	foods, total, err := s.repos.Foods.List(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "listing foods")
	}
	return &Page[models.Food]{Items: foods, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func (s *CatalogService) managedFood(ctx context.Context, caller auth.Identity, id uint) (*models.Food, error) {
	food, err := s.repos.Foods.FindByID(ctx, id)
	if err != nil {
		return nil, lookup(err, "food does not exist")
	}
	restaurant, err := s.repos.Restaurants.FindByID(ctx, food.RestaurantID)
	if err != nil {
		return nil, lookup(err, "restaurant does not exist")
	}
	if !caller.CanManage(restaurant.OwnerID) {
		return nil, forbiddenf("only the restaurant owner can change this food")
	}
	return food, nil
}

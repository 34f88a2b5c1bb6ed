package services

import (
	"context"
	"strings"

	"github.com/Kariqs/amexan-eats-api/auth"
	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/Kariqs/amexan-eats-api/repository"
	"github.com/cockroachdb/errors"
)

const (
	minRating = 1
	maxRating = 5
)

type RatingService struct {
	repos *repository.Repositories
}

func NewRatingService(repos *repository.Repositories) *RatingService {
	return &RatingService{repos: repos}
}

func validateRating(rating int) error {
	if rating < minRating || rating > maxRating {
		return validationf("rating must be between %d and %d", minRating, maxRating)
	}
	return nil
}

func validateNewReview(in models.ReviewInput) error {
	if in.Rating == nil || !present(in.Review) {
		return errors.Mark(errors.New("please provide rating and review"), ErrMissingFields)
	}
	return validateRating(*in.Rating)
}

// applyReview patches the supplied fields onto rating and review.
func applyReview(in models.ReviewInput, rating *int, review *string) error {
	if in.Rating != nil {
		if err := validateRating(*in.Rating); err != nil {
			return err
		}
		*rating = *in.Rating
	}
	if present(in.Review) {
		*review = strings.TrimSpace(*in.Review)
	}
	return nil
}

func (s *RatingService) CreateFoodReview(ctx context.Context, userID, foodID uint, in models.ReviewInput) (*models.FoodRatingAndReview, error) {
	if err := validateNewReview(in); err != nil {
		return nil, err
	}
	if _, err := s.repos.Users.FindByID(ctx, userID); err != nil {
		return nil, lookup(err, "user does not exist")
	}
	if _, err := s.repos.Foods.FindByID(ctx, foodID); err != nil {
		return nil, lookup(err, "food does not exist")
	}

	exists, err := s.repos.Reviews.FoodReviewExists(ctx, userID, foodID)
	if err != nil {
		return nil, errors.Wrap(err, "checking existing review")
	}
	if exists {
		return nil, conflictf("you have already reviewed this food")
	}

	review := &models.FoodRatingAndReview{
		UserID: userID,
		FoodID: foodID,
		Rating: *in.Rating,
		Review: strings.TrimSpace(*in.Review),
	}
	if err := s.repos.Reviews.CreateFoodReview(ctx, review); err != nil {
		return nil, errors.Wrap(err, "creating food review")
	}
	return review, nil
}

func (s *RatingService) UpdateFoodReview(ctx context.Context, caller auth.Identity, id uint, in models.ReviewInput) (*models.FoodRatingAndReview, error) {
	review, err := s.repos.Reviews.FindFoodReview(ctx, id)
	if err != nil {
		return nil, lookup(err, "review not found")
	}
	if review.UserID != caller.UserID {
		return nil, forbiddenf("only the author can edit this review")
	}
	if err := applyReview(in, &review.Rating, &review.Review); err != nil {
		return nil, err
	}
	if err := s.repos.Reviews.SaveFoodReview(ctx, review); err != nil {
		return nil, errors.Wrap(err, "updating food review")
	}
	return review, nil
}

func (s *RatingService) DeleteFoodReview(ctx context.Context, caller auth.Identity, id uint) error {
	review, err := s.repos.Reviews.FindFoodReview(ctx, id)
	if err != nil {
		return lookup(err, "review not found")
	}
	if !caller.CanModerate(review.UserID) {
		return forbiddenf("only the author can delete this review")
	}
	return errors.Wrap(s.repos.Reviews.DeleteFoodReview(ctx, id), "deleting food review")
}

func (s *RatingService) ListFoodReviews(ctx context.Context, foodID uint) ([]models.FoodRatingAndReview, error) {
	if _, err := s.repos.Foods.FindByID(ctx, foodID); err != nil {
		return nil, lookup(err, "food does not exist")
	}
	reviews, err := s.repos.Reviews.ListFoodReviews(ctx, foodID)
	return reviews, errors.Wrap(err, "listing food reviews")
}

func (s *RatingService) CreateRestaurantReview(ctx context.Context, userID, restaurantID uint, in models.ReviewInput) (*models.RestaurantRatingAndReview, error) {
	if err := validateNewReview(in); err != nil {
		return nil, err
	}
	if _, err := s.repos.Users.FindByID(ctx, userID); err != nil {
		return nil, lookup(err, "user does not exist")
	}
	if _, err := s.repos.Restaurants.FindByID(ctx, restaurantID); err != nil {
		return nil, lookup(err, "restaurant does not exist")
	}

	exists, err := s.repos.Reviews.RestaurantReviewExists(ctx, userID, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "checking existing review")
	}
	if exists {
		return nil, conflictf("you have already reviewed this restaurant")
	}

	review := &models.RestaurantRatingAndReview{
		UserID:       userID,
		RestaurantID: restaurantID,
		Rating:       *in.Rating,
		Review:       strings.TrimSpace(*in.Review),
	}
	if err := s.repos.Reviews.CreateRestaurantReview(ctx, review); err != nil {
		return nil, errors.Wrap(err, "creating restaurant review")
	}
	return review, nil
}

func (s *RatingService) UpdateRestaurantReview(ctx context.Context, caller auth.Identity, id uint, in models.ReviewInput) (*models.RestaurantRatingAndReview, error) {
	review, err := s.repos.Reviews.FindRestaurantReview(ctx, id)
	if err != nil {
		return nil, lookup(err, "review not found")
	}
	if review.UserID != caller.UserID {
		return nil, forbiddenf("only the author can edit this review")
	}
	if err := applyReview(in, &review.Rating, &review.Review); err != nil {
		return nil, err
	}
	if err := s.repos.Reviews.SaveRestaurantReview(ctx, review); err != nil {
		return nil, errors.Wrap(err, "updating restaurant review")
	}
	return review, nil
}

func (s *RatingService) DeleteRestaurantReview(ctx context.Context, caller auth.Identity, id uint) error {
	review, err := s.repos.Reviews.FindRestaurantReview(ctx, id)
	if err != nil {
		return lookup(err, "review not found")
	}
	if !caller.CanModerate(review.UserID) {
		return forbiddenf("only the author can delete this review")
	}
	return errors.Wrap(s.repos.Reviews.DeleteRestaurantReview(ctx, id), "deleting restaurant review")
}

func (s *RatingService) ListRestaurantReviews(ctx context.Context, restaurantID uint) ([]models.RestaurantRatingAndReview, error) {
	if _, err := s.repos.Restaurants.FindByID(ctx, restaurantID); err != nil {
		return nil, lookup(err, "restaurant does not exist")
	}
	reviews, err := s.repos.Reviews.ListRestaurantReviews(ctx, restaurantID)
	return reviews, errors.Wrap(err, "listing restaurant reviews")
}

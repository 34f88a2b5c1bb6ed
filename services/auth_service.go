package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/Kariqs/amexan-eats-api/auth"
	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/Kariqs/amexan-eats-api/repository"
	"github.com/Kariqs/amexan-eats-api/utils"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Default cost for bcrypt password hashing
const bcryptCost = 10

const minPasswordLength = 6

type AuthService struct {
	repos     *repository.Repositories
	tokens    *auth.TokenMaker
	mailer    utils.Mailer
	clientURL string
	logger    zerolog.Logger
}

func NewAuthService(repos *repository.Repositories, tokens *auth.TokenMaker, mailer utils.Mailer, clientURL string, logger zerolog.Logger) *AuthService {
	return &AuthService{repos: repos, tokens: tokens, mailer: mailer, clientURL: clientURL, logger: logger}
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func (s *AuthService) Signup(ctx context.Context, data models.SignupData) (*models.User, error) {
	data.Email = strings.ToLower(strings.TrimSpace(data.Email))
	if data.Name == "" || data.Email == "" || data.Phone == "" || data.Password == "" {
		return nil, errors.Mark(errors.New("please provide all the required fields"), ErrMissingFields)
	}
	if len(data.Password) < minPasswordLength {
		return nil, validationf("password must be at least %d characters", minPasswordLength)
	}

	role := data.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleOwner {
		return nil, validationf("role %q cannot be requested at signup", role)
	}

	exists, err := s.repos.Users.ExistsByEmail(ctx, data.Email)
	if err != nil {
		return nil, errors.Wrap(err, "checking existing user")
	}
	if exists {
		return nil, conflictf("user already exists")
	}

	hashedPassword, err := hashPassword(data.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hashing password")
	}

	user := &models.User{
		Name:     data.Name,
		Email:    data.Email,
		Phone:    data.Phone,
		Password: hashedPassword,
		Role:     role,
	}
	if err := s.repos.Users.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "creating user")
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, data models.LoginData) (string, *models.User, error) {
	user, err := s.repos.Users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(data.Email)))
	if err != nil {
		if err := lookup(err, "user not found"); !errors.Is(err, ErrNotFound) {
			return "", nil, err
		}
		return "", nil, validationf("invalid email or password")
	}
	if err := comparePasswords(user.Password, data.Password); err != nil {
		return "", nil, validationf("invalid email or password")
	}

	token, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return "", nil, errors.Wrap(err, "generating token")
	}
	return token, user, nil
}

// ForgotPassword mails a reset link. A mail failure is logged, not returned.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repos.Users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return lookup(err, "user with this email does not exist")
	}

	token, err := s.tokens.GenerateResetToken(user)
	if err != nil {
		return errors.Wrap(err, "generating reset token")
	}

	link := strings.TrimRight(s.clientURL, "/") + "/auth/update-password/" + url.PathEscape(token)
	err = s.mailer.SendEmail(user.Email, "Reset Password", utils.EmailData{
		Name:    user.Name,
		Message: "You requested a password reset. Click the link below to set a new password.",
		LinkURL: link,
	})
	if err != nil {
		s.logger.Error().Err(err).Uint("user_id", user.ID).Msg("sending password reset email")
	}
	return nil
}

func (s *AuthService) UpdatePassword(ctx context.Context, token, password, confirmPassword string) error {
	if token == "" {
		return errors.Mark(errors.New("please provide token"), ErrMissingFields)
	}
	identity, err := s.tokens.VerifyResetToken(token)
	if err != nil {
		return validationf("token is invalid")
	}
	if password == "" || confirmPassword == "" {
		return errors.Mark(errors.New("please provide password and confirm password"), ErrMissingFields)
	}
	if password != confirmPassword {
		return validationf("password and confirm password do not match")
	}
	if len(password) < minPasswordLength {
		return validationf("password must be at least %d characters", minPasswordLength)
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return errors.Wrap(err, "hashing password")
	}
	rows, err := s.repos.Users.UpdatePassword(ctx, identity.UserID, hashedPassword)
	if err != nil {
		return errors.Wrap(err, "updating password")
	}
	if rows == 0 {
		return notFoundf("user does not exist")
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.repos.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, lookup(err, "user does not exist")
	}
	return user, nil
}

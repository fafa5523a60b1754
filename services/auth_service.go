package services

import (
	"errors"
	"strings"
	"time"

	"github.com/MarcoT95/static/entity"
	"github.com/MarcoT95/static/repository"
	"github.com/MarcoT95/static/utils"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("current password is not valid")
)

// AuthService handles registration, login and the /auth/me profile
// surface (shipping profile + saved payment methods included).
type AuthService struct {
	userRepo    *repository.UserRepository
	profileRepo *repository.ProfileRepository
	jwtSecret   string
	jwtTTL      time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, profileRepo *repository.ProfileRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtSecret:   secret,
		jwtTTL:      ttl,
	}
}

// ----- DTOs -----

type RegisterIn struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Address        string `json:"address"`
	BillingAddress string `json:"billingAddress"`
}

type LoginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthOut struct {
	AccessToken string      `json:"accessToken"`
	User        entity.User `json:"user"`
}

type MeOut struct {
	entity.User
	Phone          string                 `json:"phone"`
	Address        string                 `json:"address"`
	BillingAddress string                 `json:"billingAddress"`
	PaymentMethods []entity.PaymentMethod `json:"paymentMethods"`
}

type UpdateProfileIn struct {
	FirstName      *string                `json:"firstName"`
	LastName       *string                `json:"lastName"`
	Email          *string                `json:"email" binding:"omitempty,email"`
	Phone          *string                `json:"phone"`
	Address        *string                `json:"address"`
	BillingAddress *string                `json:"billingAddress"`
	PaymentMethods []SavedPaymentMethodIn `json:"paymentMethods"`
	// nil means "leave stored methods alone"; an empty slice wipes them
	PaymentMethodsSet bool `json:"-"`
}

type ChangePasswordIn struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// ----- Operations -----

func (s *AuthService) Register(in *RegisterIn) (*AuthOut, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Role:      entity.RoleUser,
		IsActive:  true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	if in.Address != "" || in.BillingAddress != "" {
		err := s.profileRepo.UpsertShipping(&entity.ShippingProfile{
			UserID:          user.ID,
			ShippingAddress: in.Address,
			BillingAddress:  in.BillingAddress,
			IsDefault:       true,
		})
		if err != nil {
			return nil, err
		}
	}

	return s.buildAuthOut(user)
}

func (s *AuthService) Login(in *LoginIn) (*AuthOut, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.buildAuthOut(user)
}

func (s *AuthService) GetMe(userID uint) (*MeOut, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	out := &MeOut{User: *user, PaymentMethods: []entity.PaymentMethod{}}

	profile, err := s.profileRepo.FindShipping(userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		out.Phone = profile.Phone
		out.Address = profile.ShippingAddress
		out.BillingAddress = profile.BillingAddress
	}

	methods, err := s.profileRepo.ListPaymentMethods(userID)
	if err != nil {
		return nil, err
	}
	out.PaymentMethods = methods
	return out, nil
}

func (s *AuthService) UpdateProfile(userID uint, in *UpdateProfileIn) (*MeOut, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	updates := map[string]any{}
	if in.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != user.Email {
			count, err := s.userRepo.CountByEmailExcept(email, user.ID)
			if err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, ErrEmailTaken
			}
			updates["email"] = email
		}
	}
	if len(updates) > 0 {
		if err := s.userRepo.Update(userID, updates); err != nil {
			return nil, err
		}
	}

	if in.Phone != nil || in.Address != nil || in.BillingAddress != nil {
		profile, err := s.profileRepo.FindShipping(userID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			profile = &entity.ShippingProfile{UserID: userID, IsDefault: true}
		}
		if in.Phone != nil {
			profile.Phone = *in.Phone
		}
		if in.Address != nil {
			profile.ShippingAddress = *in.Address
		}
		if in.BillingAddress != nil {
			profile.BillingAddress = *in.BillingAddress
		}
		if err := s.profileRepo.UpsertShipping(profile); err != nil {
			return nil, err
		}
	}

	if in.PaymentMethodsSet {
		sanitized := SanitizePaymentMethods(in.PaymentMethods)
		if err := s.profileRepo.ReplacePaymentMethods(userID, sanitized); err != nil {
			return nil, err
		}
	}

	return s.GetMe(userID)
}

func (s *AuthService) ChangePassword(userID uint, in *ChangePasswordIn) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(userID, string(hashed))
}

func (s *AuthService) buildAuthOut(user *entity.User) (*AuthOut, error) {
	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, err
	}
	return &AuthOut{AccessToken: token, User: *user}, nil
}

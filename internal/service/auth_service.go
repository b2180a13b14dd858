package service

import (
	"context"
	"errors"
	"strings"

	"firebase.google.com/go/v4/auth"

	"github.com/eprinting/printshop-backend/internal/model"
	"github.com/eprinting/printshop-backend/internal/repository"
)

var ErrInvalidSignUp = errors.New("name, email and password are required")

type SignUpInput struct {
	Name          string
	Email         string
	Password      string
	UserType      string
	Gcash         string
	ContactNumber string
	ShopName      string
	ShopLocation  string
}

type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*model.User, error)
	Profile(ctx context.Context, uid string) (*model.User, error)
	UpdateCustomer(ctx context.Context, uid, name, gcash string) error
	UpdateOwner(ctx context.Context, uid, name, gcash, contactNumber, shopName, shopLocation string) error
	ChangePassword(ctx context.Context, uid, newPassword string) error
}

type authService struct {
	auth  *auth.Client
	users repository.UserRepository
	shops repository.ShopRepository
}

func NewAuthService(authClient *auth.Client, users repository.UserRepository, shops repository.ShopRepository) AuthService {
	return &authService{auth: authClient, users: users, shops: shops}
}

// SignUp creates the auth account, mirrors the profile into the users
// collection and, for owners, creates the shop document with an empty catalog.
func (s *authService) SignUp(ctx context.Context, in SignUpInput) (*model.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, ErrInvalidSignUp
	}
	role := model.RoleFromString(in.UserType)

	params := (&auth.UserToCreate{}).
		Email(email).
		Password(in.Password).
		DisplayName(name)
	record, err := s.auth.CreateUser(ctx, params)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		UID:           record.UID,
		Name:          name,
		Email:         email,
		Gcash:         in.Gcash,
		Role:          role,
		ContactNumber: in.ContactNumber,
	}
	data := map[string]interface{}{
		"name":          name,
		"email":         email,
		"gcash":         in.Gcash,
		"role":          string(role),
		"contactNumber": in.ContactNumber,
		"shopName":      "",
		"shopLocation":  "",
	}
	if role == model.RoleOwner {
		u.ShopName = in.ShopName
		u.ShopLocation = in.ShopLocation
		data["shopName"] = in.ShopName
		data["shopLocation"] = in.ShopLocation
	}
	if err := s.users.Set(ctx, record.UID, data); err != nil {
		return nil, err
	}
	if role == model.RoleOwner {
		shop := &model.Shop{
			ShopName:     in.ShopName,
			ShopLocation: in.ShopLocation,
			OwnerID:      record.UID,
			PaperOptions: []model.PaperOption{},
		}
		if _, err := s.shops.Create(ctx, shop); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func (s *authService) Profile(ctx context.Context, uid string) (*model.User, error) {
	if uid == "" {
		return nil, ErrUnauthenticated
	}
	u, err := s.users.Get(ctx, uid)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if u.Email == "" {
		if record, err := s.auth.GetUser(ctx, uid); err == nil {
			u.Email = record.Email
		}
	}
	return u, nil
}

func (s *authService) UpdateCustomer(ctx context.Context, uid, name, gcash string) error {
	if uid == "" {
		return ErrUnauthenticated
	}
	return s.users.Update(ctx, uid, map[string]interface{}{
		"name":  name,
		"gcash": gcash,
	})
}

func (s *authService) UpdateOwner(ctx context.Context, uid, name, gcash, contactNumber, shopName, shopLocation string) error {
	if uid == "" {
		return ErrUnauthenticated
	}
	return s.users.Update(ctx, uid, map[string]interface{}{
		"name":          name,
		"gcash":         gcash,
		"contactNumber": contactNumber,
		"shopName":      shopName,
		"shopLocation":  shopLocation,
	})
}

func (s *authService) ChangePassword(ctx context.Context, uid, newPassword string) error {
	if uid == "" {
		return ErrUnauthenticated
	}
	params := (&auth.UserToUpdate{}).Password(newPassword)
	_, err := s.auth.UpdateUser(ctx, uid, params)
	return err
}

package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fitmarket/internal/infra"
	"fitmarket/internal/models/db_models"
	"fitmarket/internal/models/request_models"
	"fitmarket/internal/models/response_models"
	"fitmarket/internal/repositories"
	"fitmarket/pkg/tokendeny"
	"fitmarket/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, id uuid.UUID) (response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, request request_models.UpdateProfileRequest) (response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	denylist    tokendeny.Denylist
}

func NewAccountService(accountRepo repositories.AccountRepository, denylist tokendeny.Denylist) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		denylist:    denylist,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {

	role := db_models.Role(request.Role)
	if !role.Valid() {
		return utils.ErrInvalidRole
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		Bio:          request.Bio,
		AvatarURL:    request.Avatar,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		// Lost the race against a concurrent signup for the same email.
		if infra.IsUniqueViolation(err) {
			return utils.ErrEmailAlreadyExists
		}
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}

	if account == nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, string(account.Role))
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	return response_models.LoginResponse{
		Token: token,
		Role:  string(account.Role),
	}, nil
}

// Logout denylists the token for its remaining lifetime; an already
// expired token is simply dropped.
func (a *AccountService) Logout(ctx context.Context, token string) error {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return utils.ErrUnauthenticated
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := a.denylist.Deny(ctx, token, ttl); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) GetProfile(ctx context.Context, id uuid.UUID) (response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, id)
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountResponse{}, utils.ErrAccountNotFound
	}

	return response_models.NewAccountResponse(account), nil
}

// UpdateProfile touches name, bio and avatar only. Email and role have
// no update path.
func (a *AccountService) UpdateProfile(ctx context.Context, id uuid.UUID, request request_models.UpdateProfileRequest) (response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, id)
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountResponse{}, utils.ErrAccountNotFound
	}

	if request.Name != nil {
		account.Name = *request.Name
	}
	if request.Bio != nil {
		account.Bio = request.Bio
	}
	if request.Avatar != nil {
		account.AvatarURL = request.Avatar
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewAccountResponse(account), nil
}

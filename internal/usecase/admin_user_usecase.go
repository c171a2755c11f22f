package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 管理画面の顧客管理
type AdminUserUsecase struct {
	userRepo repo.UserRepository
}

func NewAdminUserUsecase(userRepo repo.UserRepository) *AdminUserUsecase {
	return &AdminUserUsecase{userRepo: userRepo}
}

func (u *AdminUserUsecase) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return users, nil
}

type AdminUpdateUserInput struct {
	Name    string
	Email   string
	Phone   string
	IsPrime bool
}

func (u *AdminUserUsecase) UpdateUser(ctx context.Context, userID int64, in AdminUpdateUserInput) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return NewHTTPError(http.StatusBadRequest, "email required")
	}

	err := u.userRepo.Update(ctx, &model.User{
		ID:      userID,
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		IsPrime: in.IsPrime,
	})
	if err == repo.ErrUserNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AdminUserUsecase) DeleteUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	err := u.userRepo.Delete(ctx, userID)
	if err == repo.ErrUserNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type SupportUsecase struct {
	callRepo repo.CallRequestRepository
}

func NewSupportUsecase(callRepo repo.CallRequestRepository) *SupportUsecase {
	return &SupportUsecase{callRepo: callRepo}
}

type CallRequestInput struct {
	UserID int64
	Name   string
	Phone  string
}

func (u *SupportUsecase) CreateCallRequest(ctx context.Context, in CallRequestInput) error {
	if strings.TrimSpace(in.Phone) == "" {
		return NewHTTPError(http.StatusBadRequest, "phone required")
	}

	err := u.callRepo.Create(ctx, model.CallRequest{
		UserID: in.UserID,
		Name:   strings.TrimSpace(in.Name),
		Phone:  strings.TrimSpace(in.Phone),
		Status: model.CallRequestPending,
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *SupportUsecase) ListCallRequests(ctx context.Context) ([]model.CallRequest, error) {
	reqs, err := u.callRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return reqs, nil
}

// 電話済みにする
func (u *SupportUsecase) MarkCalled(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.callRepo.UpdateStatus(ctx, id, model.CallRequestCalled)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

package validator

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"app/internal/usecase"
)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// OTP発行の入力を検証
func (v *authValidator) ValidateOTPRequest(ctx context.Context, contact string) error {
	if contact == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "contact required")
	}
	if !isEmailLike(contact) && !isPhoneLike(contact) {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid contact")
	}
	return nil
}

// 会員登録の入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, contact, otp, name, password string) error {
	if err := v.ValidateOTPRequest(ctx, contact); err != nil {
		return err
	}

	// 必須チェック
	if strings.TrimSpace(otp) == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "otp required")
	}
	if strings.TrimSpace(name) == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "name required")
	}

	// パスワード最低文字数（MVP: 8）
	if len(password) < 8 {
		return usecase.NewHTTPError(http.StatusBadRequest, "password too short")
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, contact, password string) error {
	if contact == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "contact and password required")
	}
	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(s)
}

// 電話番号らしさ（数字と+と-だけ、7桁以上）
func isPhoneLike(s string) bool {
	re := regexp.MustCompile(`^\+?[0-9\-]{7,15}$`)
	return re.MatchString(s)
}

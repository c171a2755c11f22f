package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type AuthUserRepoMock struct{ mock.Mock }

func (m *AuthUserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 42
	}
	return args.Error(0)
}

func (m *AuthUserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	panic("not used in AuthUsecase tests")
}

func (m *AuthUserRepoMock) FindByContact(ctx context.Context, contact string) (*model.User, error) {
	args := m.Called(ctx, contact)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *AuthUserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	panic("not used in AuthUsecase tests")
}

func (m *AuthUserRepoMock) List(ctx context.Context) ([]model.User, error) {
	panic("not used in AuthUsecase tests")
}

func (m *AuthUserRepoMock) Update(ctx context.Context, user *model.User) error {
	panic("not used in AuthUsecase tests")
}

func (m *AuthUserRepoMock) Delete(ctx context.Context, userID int64) error {
	panic("not used in AuthUsecase tests")
}

func (m *AuthUserRepoMock) SaveCartData(ctx context.Context, userID int64, cartData string) error {
	panic("not used in AuthUsecase tests")
}

type AuthProductRepoMock struct{ mock.Mock }

func (m *AuthProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *AuthProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	panic("not used in AuthUsecase tests")
}

func (m *AuthProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used in AuthUsecase tests")
}

func (m *AuthProductRepoMock) Update(ctx context.Context, p model.Product) error {
	panic("not used in AuthUsecase tests")
}

func (m *AuthProductRepoMock) Delete(ctx context.Context, id int64) error {
	panic("not used in AuthUsecase tests")
}

// OTPストアの偽物（TTLは見ない）
type otpStoreStub struct {
	codes map[string]string
}

func newOTPStoreStub() *otpStoreStub {
	return &otpStoreStub{codes: map[string]string{}}
}

func (s *otpStoreStub) Set(contact string, code string) { s.codes[contact] = code }

func (s *otpStoreStub) Verify(contact string, code string) bool { return s.codes[contact] == code }

func (s *otpStoreStub) Delete(contact string) { delete(s.codes, contact) }

type presenceSpy struct {
	touched bool
}

func (p *presenceSpy) Touch() { p.touched = true }

// 常に通すvalidator
type passValidator struct{}

func (passValidator) ValidateOTPRequest(ctx context.Context, contact string) error { return nil }

func (passValidator) ValidateRegister(ctx context.Context, contact, otp, name, password string) error {
	return nil
}

func (passValidator) ValidateLogin(ctx context.Context, contact, password string) error { return nil }

type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

type plainVerifier struct{}

func (plainVerifier) Verify(plain string, hashed string) bool { return "hashed:"+plain == hashed }

type issuerStub struct{}

func (issuerStub) Issue(userID int64, isAdmin bool, now time.Time) (string, time.Time, error) {
	return "token", now.Add(time.Hour), nil
}

type authFixture struct {
	uc       *usecase.AuthUsecase
	users    *AuthUserRepoMock
	products *AuthProductRepoMock
	otp      *otpStoreStub
	presence *presenceSpy
}

func newAuthFixture() authFixture {
	users := new(AuthUserRepoMock)
	products := new(AuthProductRepoMock)
	otp := newOTPStoreStub()
	presence := &presenceSpy{}
	uc := usecase.NewAuthUsecase(users, products, otp, presence, passValidator{}, plainHasher{}, plainVerifier{}, issuerStub{})
	return authFixture{uc: uc, users: users, products: products, otp: otp, presence: presence}
}

// =====================
// RequestOTP
// =====================

func TestAuthUsecase_RequestOTP_NewContact(t *testing.T) {
	f := newAuthFixture()
	f.users.On("FindByContact", mock.Anything, "ravi@example.com").Return(nil, repo.ErrUserNotFound)

	out, err := f.uc.RequestOTP(context.Background(), "ravi@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "OTP Sent", out.Message)
	assert.Equal(t, "1234", out.MockOTP)
	assert.True(t, f.otp.Verify("ravi@example.com", "1234"))
}

func TestAuthUsecase_RequestOTP_ExistingUser(t *testing.T) {
	f := newAuthFixture()
	f.users.On("FindByContact", mock.Anything, "ravi@example.com").Return(&model.User{ID: 1}, nil)

	_, err := f.uc.RequestOTP(context.Background(), "ravi@example.com")
	assertHTTPStatus(t, err, http.StatusBadRequest)
	he, _ := usecase.AsHTTPError(err)
	assert.Equal(t, "User exists", he.Message)
}

// =====================
// Register
// =====================

func TestAuthUsecase_Register_EmailContact(t *testing.T) {
	f := newAuthFixture()
	f.otp.Set("ravi@example.com", "1234")

	f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "ravi@example.com" &&
			u.Phone == "" &&
			u.PasswordHash == "hashed:secret123" &&
			u.CartData == "[]" &&
			!u.IsAdmin
	})).Return(nil)

	out, err := f.uc.Register(context.Background(), usecase.RegisterInput{
		Contact:  "ravi@example.com",
		OTP:      "1234",
		Name:     "Ravi",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), out.ID)
	assert.Equal(t, "user", out.Role)

	//使用済みOTPは破棄される
	assert.False(t, f.otp.Verify("ravi@example.com", "1234"))
}

// 電話番号contactは合成メールになる
func TestAuthUsecase_Register_PhoneContact(t *testing.T) {
	f := newAuthFixture()
	f.otp.Set("9876543210", "1234")

	f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "9876543210@mobile" && u.Phone == "9876543210"
	})).Return(nil)

	_, err := f.uc.Register(context.Background(), usecase.RegisterInput{
		Contact:  "9876543210",
		OTP:      "1234",
		Name:     "Ravi",
		Password: "secret123",
	})
	assert.NoError(t, err)
	f.users.AssertExpectations(t)
}

func TestAuthUsecase_Register_InvalidOTP(t *testing.T) {
	f := newAuthFixture()
	f.otp.Set("ravi@example.com", "1234")

	_, err := f.uc.Register(context.Background(), usecase.RegisterInput{
		Contact:  "ravi@example.com",
		OTP:      "9999",
		Name:     "Ravi",
		Password: "secret123",
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)
	he, _ := usecase.AsHTTPError(err)
	assert.Equal(t, "Invalid OTP", he.Message)
}

// =====================
// Login
// =====================

func TestAuthUsecase_Login_Success_RestoresCart(t *testing.T) {
	f := newAuthFixture()

	f.users.On("FindByContact", mock.Anything, "ravi@example.com").Return(&model.User{
		ID:           10,
		Name:         "Ravi",
		Email:        "ravi@example.com",
		PasswordHash: "hashed:secret123",
		CartData:     `[{"name":"Hammer","price":"250","Quantity":2}]`,
	}, nil)
	f.products.On("List", mock.Anything).Return([]model.Product{
		{ID: 1, Name: "Hammer", Image: "/h.jpg"},
	}, nil)

	out, err := f.uc.Login(context.Background(), usecase.LoginInput{Contact: "ravi@example.com", Password: "secret123"})
	assert.NoError(t, err)
	assert.Equal(t, "token", out.Token)
	assert.Len(t, out.Cart, 1)
	assert.Equal(t, "1", out.Cart[0].ProductID)
	assert.Equal(t, int64(2), out.Cart[0].Quantity)
	assert.False(t, f.presence.touched)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	f := newAuthFixture()
	f.users.On("FindByContact", mock.Anything, "ravi@example.com").Return(&model.User{
		ID:           10,
		PasswordHash: "hashed:secret123",
	}, nil)

	_, err := f.uc.Login(context.Background(), usecase.LoginInput{Contact: "ravi@example.com", Password: "wrong"})
	assertHTTPStatus(t, err, http.StatusUnauthorized)
	he, _ := usecase.AsHTTPError(err)
	assert.Equal(t, "Invalid Credentials", he.Message)
}

func TestAuthUsecase_Login_UnknownContactIsSameError(t *testing.T) {
	f := newAuthFixture()
	f.users.On("FindByContact", mock.Anything, "nobody@example.com").Return(nil, repo.ErrUserNotFound)

	_, err := f.uc.Login(context.Background(), usecase.LoginInput{Contact: "nobody@example.com", Password: "x"})
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthUsecase_Login_AdminMarksPresence(t *testing.T) {
	f := newAuthFixture()
	f.users.On("FindByContact", mock.Anything, "admin@umang.com").Return(&model.User{
		ID:           1,
		PasswordHash: "hashed:adminpass",
		IsAdmin:      true,
		CartData:     "[]",
	}, nil)
	f.products.On("List", mock.Anything).Return([]model.Product{}, nil)

	out, err := f.uc.Login(context.Background(), usecase.LoginInput{Contact: "admin@umang.com", Password: "adminpass"})
	assert.NoError(t, err)
	assert.True(t, out.IsAdmin)
	assert.True(t, f.presence.touched)
}

// カタログ取得に失敗してもログインは通る（カートは空）
func TestAuthUsecase_Login_CatalogFailureStillLogsIn(t *testing.T) {
	f := newAuthFixture()
	f.users.On("FindByContact", mock.Anything, "ravi@example.com").Return(&model.User{
		ID:           10,
		PasswordHash: "hashed:secret123",
		CartData:     `[{"name":"Hammer","price":"250","Quantity":2}]`,
	}, nil)
	f.products.On("List", mock.Anything).Return(nil, assert.AnError)

	out, err := f.uc.Login(context.Background(), usecase.LoginInput{Contact: "ravi@example.com", Password: "secret123"})
	assert.NoError(t, err)
	assert.Len(t, out.Cart, 0)
}

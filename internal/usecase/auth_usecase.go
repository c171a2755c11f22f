package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/cart"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// ワンタイムコードの保存の約束（TTL付きKV。実装はinfra/memstore）
type OTPStore interface {
	Set(contact string, code string)
	Verify(contact string, code string) bool
	Delete(contact string)
}

// 管理者の在席の約束
type PresenceMarker interface {
	Touch()
}

// アクセストークンを発行する約束
type TokenIssuer interface {
	Issue(userID int64, isAdmin bool, now time.Time) (string, time.Time, error)
}

// 入力検証の約束（実装はvalidatorパッケージ）
type AuthValidator interface {
	ValidateOTPRequest(ctx context.Context, contact string) error
	ValidateRegister(ctx context.Context, contact, otp, name, password string) error
	ValidateLogin(ctx context.Context, contact, password string) error
}

// 平文パスワードからハッシュへ
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// ハッシュと平文を比較
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}

type AuthUsecase struct {
	userRepo    repo.UserRepository
	productRepo repo.ProductRepository
	otpStore    OTPStore
	presence    PresenceMarker
	validator   AuthValidator
	hasher      PasswordHasher
	verifier    PasswordVerifier
	issuer      TokenIssuer
	clock       func() time.Time
}

// DI
func NewAuthUsecase(
	userRepo repo.UserRepository,
	productRepo repo.ProductRepository,
	otpStore OTPStore,
	presence PresenceMarker,
	validator AuthValidator,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer TokenIssuer,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:    userRepo,
		productRepo: productRepo,
		otpStore:    otpStore,
		presence:    presence,
		validator:   validator,
		hasher:      hasher,
		verifier:    verifier,
		issuer:      issuer,
		clock:       time.Now,
	}
}

// SMS/メール送信は繋いでいないのでモックコード固定
const mockOTPCode = "1234"

type OTPOutput struct {
	Message string `json:"message"`
	MockOTP string `json:"mockOtp"`
}

// RequestOTP は未登録のcontactへワンタイムコードを発行する
func (u *AuthUsecase) RequestOTP(ctx context.Context, contact string) (OTPOutput, error) {
	contact = strings.TrimSpace(contact)
	if err := u.validator.ValidateOTPRequest(ctx, contact); err != nil {
		return OTPOutput{}, err
	}

	existing, err := u.userRepo.FindByContact(ctx, contact)
	if err != nil && err != repo.ErrUserNotFound {
		return OTPOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if existing != nil {
		return OTPOutput{}, NewHTTPError(http.StatusBadRequest, "User exists")
	}

	u.otpStore.Set(contact, mockOTPCode)

	return OTPOutput{Message: "OTP Sent", MockOTP: mockOTPCode}, nil
}

type RegisterInput struct {
	Contact  string
	OTP      string
	Name     string
	Password string
}

type RegisterOutput struct {
	ID   int64      `json:"id"`
	Name string     `json:"name"`
	Role string     `json:"role"`
	Cart cart.Lines `json:"cart"`
}

// Register はOTP検証済みのcontactで新規ユーザーを作る。
// contactが@を含めばemail、そうでなければ電話番号として扱う
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (RegisterOutput, error) {
	contact := strings.TrimSpace(in.Contact)
	if err := u.validator.ValidateRegister(ctx, contact, in.OTP, in.Name, in.Password); err != nil {
		return RegisterOutput{}, err
	}

	if !u.otpStore.Verify(contact, in.OTP) {
		return RegisterOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid OTP")
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return RegisterOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user := &model.User{
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: hashed,
		CartData:     "[]",
	}
	if strings.Contains(contact, "@") {
		user.Email = contact
	} else {
		user.Email = contact + "@mobile"
		user.Phone = contact
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return RegisterOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.otpStore.Delete(contact)

	return RegisterOutput{
		ID:   user.ID,
		Name: user.Name,
		Role: "user",
		Cart: cart.Lines{},
	}, nil
}

type LoginInput struct {
	Contact  string
	Password string
}

type LoginOutput struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	IsAdmin   bool       `json:"isAdmin"`
	IsPrime   bool       `json:"isPrime"`
	Cart      cart.Lines `json:"cart"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"token_expires_at"`
}

// Login は認証して、ミラーされたスナップショットからカートを復元して返す
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	contact := strings.TrimSpace(in.Contact)
	if err := u.validator.ValidateLogin(ctx, contact, in.Password); err != nil {
		return LoginOutput{}, err
	}

	user, err := u.userRepo.FindByContact(ctx, contact)
	if err == repo.ErrUserNotFound {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Invalid Credentials")
	}
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !u.verifier.Verify(in.Password, user.PasswordHash) {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Invalid Credentials")
	}

	//管理者のログインは在席扱いにする
	if user.IsAdmin {
		u.presence.Touch()
	}

	//スナップショットを現在のカタログ基準で復元。
	//カタログ取得に失敗してもログイン自体は通す
	restored := cart.Lines{}
	if user.CartData != "" {
		if catalog, err := u.productRepo.List(ctx); err == nil {
			restored = cart.Rehydrate(user.CartData, catalog)
		}
	}

	token, expiresAt, err := u.issuer.Issue(user.ID, user.IsAdmin, u.clock())
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return LoginOutput{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		IsAdmin:   user.IsAdmin,
		IsPrime:   user.IsPrime,
		Cart:      restored,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

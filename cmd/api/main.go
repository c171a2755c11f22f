package main

import (
	"context"
	"log"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	"app/internal/infra/memstore"
	"app/internal/infra/payment"
	infraRepo "app/internal/infra/repository"
	repo "app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	//アクセストークン
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 24 * time.Hour,
	}
}

func (i *jwtIssuer) Issue(userID int64, isAdmin bool, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub": userID,
		"adm": isAdmin,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// 管理者アカウントがなければ作る
func seedMasterAdmin(ctx context.Context, users repo.UserRepository, hasher usecase.PasswordHasher, cfg config.Config) error {
	_, err := users.FindByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if err != repo.ErrUserNotFound {
		return err
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}

	return users.Create(ctx, &model.User{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		CartData:     "[]",
		IsAdmin:      true,
	})
}

func main() {
	// .envはローカル開発用。無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Review{},
		&model.SiteReview{},
		&model.ChatMessage{},
		&model.CallRequest{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	_ = orderRepo
	_ = orderItemRepo
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	siteReviewRepo := infraRepo.NewSiteReviewGormRepository(gormDB)
	chatRepo := infraRepo.NewChatGormRepository(gormDB)
	callRepo := infraRepo.NewCallRequestGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	otpStore := memstore.NewOTPStore(5 * time.Minute)
	presence := memstore.NewPresenceTracker(2 * time.Minute)
	gateway := payment.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, "")
	authValidator := validator.NewAuthValidator()

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := usecase.NewBcryptPasswordHasher(12)
	verifier := usecase.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := newJWTIssuer(cfg.JWTSecret)

	//管理画面のWebSocketフィード
	chatHub := handler.NewChatHub()

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(userRepo, productRepo)
	paymentUC := usecase.NewPaymentUsecase(gateway)
	orderUC := usecase.NewOrderUsecase(txManager)
	authUC := usecase.NewAuthUsecase(userRepo, productRepo, otpStore, presence, authValidator, hasher, verifier, issuer)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, siteReviewRepo, productRepo)
	chatUC := usecase.NewChatUsecase(chatRepo, userRepo, presence, chatHub)
	supportUC := usecase.NewSupportUsecase(callRepo)
	adminUserUC := usecase.NewAdminUserUsecase(userRepo)

	//管理者アカウントをシード
	if err := seedMasterAdmin(context.Background(), userRepo, hasher, cfg); err != nil {
		log.Fatal(err)
	}

	//Handler生成
	handlers := server.Handlers{
		Product:      handler.NewProductHandler(productUC),
		Cart:         handler.NewCartHandler(cartUC),
		Payment:      handler.NewPaymentHandler(paymentUC),
		Order:        handler.NewOrderHandler(orderUC),
		Auth:         handler.NewAuthHandler(authUC),
		Review:       handler.NewReviewHandler(reviewUC),
		Chat:         handler.NewChatHandler(chatUC, chatHub),
		Support:      handler.NewSupportHandler(supportUC),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		AdminUser:    handler.NewAdminUserHandler(adminUserUC),
	}

	//Server起動
	e := server.New(cfg, handlers, presence)
	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatal(err)
	}
}

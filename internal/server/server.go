package server

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/memstore"
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers はルート登録に必要なハンドラをまとめたもの
type Handlers struct {
	Product      *handler.ProductHandler
	Cart         *handler.CartHandler
	Payment      *handler.PaymentHandler
	Order        *handler.OrderHandler
	Auth         *handler.AuthHandler
	Review       *handler.ReviewHandler
	Chat         *handler.ChatHandler
	Support      *handler.SupportHandler
	AdminProduct *handler.AdminProductHandler
	AdminUser    *handler.AdminUserHandler
}

// New はechoを組み立てて返す
func New(cfg config.Config, h Handlers, presence *memstore.PresenceTracker) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	//公開API
	api := e.Group("/api")
	h.Auth.RegisterRoutes(api)
	h.Product.RegisterRoutes(api)
	h.Cart.RegisterRoutes(api)
	h.Payment.RegisterRoutes(api)
	h.Order.RegisterRoutes(api)
	h.Review.RegisterRoutes(api)
	h.Chat.RegisterRoutes(api)
	h.Support.RegisterRoutes(api)

	//管理操作はJWT + adminロール必須。アクセスのたびに在席を更新する
	guards := []echo.MiddlewareFunc{
		middleware.AuthJWT(cfg),
		middleware.AdminRoleGuard(),
		middleware.AdminPresence(presence),
	}

	//既存パス互換のため /api 直下にルート単位のガードで登録する
	h.AdminProduct.RegisterRoutes(api, guards...)
	h.AdminUser.RegisterRoutes(api, guards...)

	admin := api.Group("/admin", guards...)
	h.AdminProduct.RegisterAdminRoutes(admin)
	h.Chat.RegisterAdminRoutes(admin)
	h.Support.RegisterAdminRoutes(admin)

	//管理画面向けWebSocket
	h.Chat.RegisterWS(e)

	return e
}

// Start はサーバーを起動する
func Start(e *echo.Echo, port string) error {
	return e.Start(":" + port)
}

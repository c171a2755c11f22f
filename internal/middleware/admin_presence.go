package middleware

import (
	"github.com/labstack/echo/v4"
)

type presenceMarker interface {
	Touch()
}

// 管理画面へのアクセスを在席扱いにする。
// チャットの「オンライン」表示はこの最終アクセスから判定される
func AdminPresence(tracker presenceMarker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tracker.Touch()
			return next(c)
		}
	}
}

package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret string // JWT署名シークレット

	RazorpayKeyID     string // 決済ゲートウェイのキーID
	RazorpayKeySecret string // 決済ゲートウェイのシークレット

	AdminName     string // シードする管理者名
	AdminEmail    string // シードする管理者メール
	AdminPassword string // シードする管理者パスワード

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),

		AdminName:     getenv("ADMIN_NAME", "Master Admin"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@umang.com"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		GoEnv: getenv("GO_ENV", "dev"),
		FEURL: getenv("FE_URL", "*"),
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.RazorpayKeyID == "" {
		return Config{}, fmt.Errorf("RAZORPAY_KEY_ID is required")
	}
	if cfg.RazorpayKeySecret == "" {
		return Config{}, fmt.Errorf("RAZORPAY_KEY_SECRET is required")
	}
	if cfg.AdminPassword == "" {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

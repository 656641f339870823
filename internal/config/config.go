package config

import "os"

// Configはアプリ全体の設定
type Config struct {
	Port      string // サーバーポート
	JWTSecret string // JWT署名シークレット
}

// Loadは環境変数から設定を組み立てる。DB接続はinfra/dbが直接環境変数を見る。
func Load() Config {
	return Config{
		Port:      getenv("PORT", "8080"),
		JWTSecret: getenv("JWT_SECRET", "dev_secret_change_me"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

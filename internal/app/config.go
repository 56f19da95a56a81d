package app

import (
	"time"

	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
	"github.com/yungbote/mealplanner-backend/internal/utils"
)

type Config struct {
	Port        string
	ServiceName string
	Environment string
	Version     string

	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	AvatarDir   string
	AvatarRoute string

	StripeSecretKey string
	BillingCacheTTL time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	billingCacheTTLSeconds := utils.GetEnvAsInt("BILLING_PRICE_CACHE_TTL", 3600, log)
	return Config{
		Port:            utils.GetEnv("PORT", "8080", log),
		ServiceName:     utils.GetEnv("SERVICE_NAME", "mealplanner", log),
		Environment:     utils.GetEnv("APP_ENV", "development", log),
		Version:         utils.GetEnv("APP_VERSION", "dev", log),
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,
		AvatarDir:       utils.GetEnv("AVATAR_DIR", "./data/avatars", log),
		AvatarRoute:     utils.GetEnv("AVATAR_ROUTE", "/static/avatars", log),
		StripeSecretKey: utils.GetEnv("STRIPE_SECRET_KEY", "", log),
		BillingCacheTTL: time.Duration(billingCacheTTLSeconds) * time.Second,
	}
}

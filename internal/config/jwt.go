package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

var (
	jwtConfig *JWTConfig
	jwtOnce   sync.Once
)

func LoadJWTConfig() *JWTConfig {
	jwtOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "dev-secret-change-me"
			log.Println("Warning: JWT_SECRET not set, using insecure development secret")
		}
		expiry := 7 * 24 * time.Hour
		if raw := os.Getenv("JWT_EXPIRE"); raw != "" {
			if d, err := time.ParseDuration(raw); err == nil {
				expiry = d
			} else {
				log.Printf("Warning: invalid JWT_EXPIRE %q, using default", raw)
			}
		}
		jwtConfig = &JWTConfig{
			Secret: secret,
			Expiry: expiry,
		}
	})
	return jwtConfig
}

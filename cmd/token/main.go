package main

import (
	"flag"
	"fmt"
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/logger"
	"slices"

	"github.com/rs/zerolog/log"
)

// token mints an access token for an operator, e.g.
//
//	go run ./cmd/token -subject ops-1 -email ops@hotel.local -role admin
func main() {
	subject := flag.String("subject", "", "token subject (operator id)")
	email := flag.String("email", "", "operator email")
	role := flag.String("role", constant.RoleStaff, "operator role: admin or staff")

	flag.Parse()

	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	if !slices.Contains([]string{constant.RoleAdmin, constant.RoleStaff}, *role) {
		log.Fatal().Str("role", *role).Msg("Invalid role. Use 'admin' or 'staff'")
	}

	tracer, cleanup := otel.New(cfg)
	defer cleanup()

	token, err := jwt.New(cfg, tracer).GenerateToken(*subject, *email, *role)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate token")
	}

	fmt.Println(token) //nolint:forbidigo
}

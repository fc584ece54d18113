// Command admintoken mints an admin bearer token for the account unlock routes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Tinaglini/RV-Project/pkg/config"
	"github.com/Tinaglini/RV-Project/pkg/jwtutil"
)

func main() {
	subject := flag.String("subject", "operator", "operator name stored in the token subject")
	hours := flag.Int("hours", 0, "token lifetime in hours, defaults to JWT_EXPIRATION_HOURS")
	flag.Parse()

	cfg, err := config.Load("clients")
	if err != nil {
		fmt.Fprintln(os.Stderr, "load configuration:", err)
		os.Exit(1)
	}

	expiration := cfg.JWT.ExpirationHours
	if *hours > 0 {
		expiration = *hours
	}

	token, err := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
		SigningKey:      cfg.JWT.SigningKey,
		ExpirationHours: expiration,
	}).GenerateAdminToken(*subject)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate token:", err)
		os.Exit(1)
	}

	fmt.Println(token)
}

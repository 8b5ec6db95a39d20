package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"geoalert/config"
	"geoalert/internal/infra/auth"
)

func main() {
	serviceName := flag.String("service", "point-workflow", "Calling service name stored in the svc claim")
	ttl := flag.Duration("ttl", 0, "Token lifetime, overrides auth.tokenTtl when set")
	flag.Parse()

	if err := run(*serviceName, *ttl); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating service token: %v\n", err)
		os.Exit(1)
	}
}

func run(serviceName string, ttl time.Duration) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if ttl > 0 && cfg.Auth != nil {
		cfg.Auth.TokenTTL = ttl
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokenSvc.IssueServiceToken(serviceName)
	if err != nil {
		return err
	}

	fmt.Printf("Service:   %s\n", serviceName)
	if tokenSvc.TokenTTL() > 0 {
		fmt.Printf("Expires:   %s\n", time.Now().Add(tokenSvc.TokenTTL()).UTC().Format(time.RFC3339))
	} else {
		fmt.Printf("Expires:   never\n")
	}
	fmt.Printf("\nAuthorization: Bearer %s\n", token)

	return nil
}

// Command admin-token mints an admin bearer token from the signing secret.
// It exists to bootstrap the first admin: the admin flag can only be granted
// through the API by an existing admin.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gatherly/api/internal/model"
	"github.com/gatherly/api/internal/service"
)

func main() {
	userID := flag.String("user", "user:admin", "User record id for the token")
	name := flag.String("name", "Admin", "Name claim for the token")
	email := flag.String("email", "admin@gatherly.dev", "Email claim for the token")
	issuer := flag.String("issuer", "gatherly-api", "Token issuer")
	expMins := flag.Int("exp", 60*24*7, "Token expiration in minutes (default: 7 days)")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "Error: JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	tokenService := service.NewTokenService(service.TokenServiceConfig{
		Secret:   secret,
		Issuer:   *issuer,
		Duration: time.Duration(*expMins) * time.Minute,
	})

	now := time.Now()
	token, err := tokenService.Issue(&model.User{
		ID:        *userID,
		Name:      *name,
		Email:     *email,
		IsAdmin:   true,
		CreatedAt: now,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"token":      token,
			"token_type": "Bearer",
			"expires_in": *expMins * 60,
			"user_id":    *userID,
			"email":      *email,
			"isAdmin":    true,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
	} else {
		expTime := now.Add(time.Duration(*expMins) * time.Minute)
		fmt.Println("Admin Token Generated")
		fmt.Println("=====================")
		fmt.Printf("User ID:  %s\n", *userID)
		fmt.Printf("Email:    %s\n", *email)
		fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
		fmt.Println()
		fmt.Println("Token:")
		fmt.Println(token)
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  curl -H 'Authorization: Bearer <token>' -X PATCH http://localhost:8080/v1/events/{eventId}\n")
	}
}

// Command mint-token issues an access token for local development and
// operations. Production tokens come from the identity provider.
//
// Usage:
//
//	mint-token --subject=<uuid> --role=admin --ttl=1h
//
// Requires AUTH_JWT_SECRET; AUTH_JWT_ISSUER defaults to "evoting".
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/auth"
	"github.com/heartmarshall/evoting-backend/internal/domain"
)

func main() {
	subject := flag.String("subject", "", "subject UUID; a random one is generated when empty")
	role := flag.String("role", "voter", "role claim: voter or admin")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		log.Fatal("AUTH_JWT_SECRET environment variable is required")
	}
	issuer := os.Getenv("AUTH_JWT_ISSUER")
	if issuer == "" {
		issuer = "evoting"
	}

	id := uuid.New()
	if *subject != "" {
		parsed, err := uuid.Parse(*subject)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Usage: mint-token --subject=<uuid> --role=voter|admin")
			os.Exit(1)
		}
		id = parsed
	}

	token, err := auth.NewJWTManager(secret, issuer, *ttl).Generate(id, domain.UserRole(*role))
	if err != nil {
		log.Fatalf("mint token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "subject=%s role=%s expires_in=%s\n", id, *role, *ttl)
	fmt.Println(token)
}

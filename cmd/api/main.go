package main

import (
	_ "checkout_verifier/docs"
	"checkout_verifier/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Checkout Verifier API
// @version         1.0
// @description     Payment verification for the storefront checkout: webhook ingest, gateway reconciliation and signed confirmation tokens.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}

package main

import (
	_ "invoice_service/docs"
	"invoice_service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Invoice Service API
// @version         1.0
// @description     Invoice management API (CRUD, totals and dashboard) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}

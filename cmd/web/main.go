// @title           SwiftConnect API
// @version         1.0
// @description     API для управления абонентами, пакетами и платежами WiFi-провайдера (документация Swagger).
// @contact.name    SwiftConnect
// @contact.email   support@swiftconnect.local
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

package main

import "swiftconnect_backend/internal/app"

func main() {
	app.Run()
}

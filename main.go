package main

import "jobboard-api/cmd"

// @title           Job Board API
// @version         1.0
// @description     Job postings, companies, locations and job applications.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cmd.Execute()
}

// @title           Job Board API
// @version         1.0
// @description     API доски вакансий: соискатели, компании, вакансии и отклики.
// @contact.name    Job Board
// @contact.email   support@jobboard.local
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

package main

import (
	"os"

	_ "jobboard_backend/docs"
	"jobboard_backend/internal/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

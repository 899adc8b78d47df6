package handler

import (
	"net/http"

	"github.com/drydock-dev/drydock/internal/api/response"
)

// WelcomeMessage is returned by the unprotected root endpoint
const WelcomeMessage = "Welcome to Drydock"

// Home handles GET /
func Home(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Message{Message: WelcomeMessage})
}

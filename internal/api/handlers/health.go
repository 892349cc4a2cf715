package handlers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Health provides a minimal liveness check endpoint.
func Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	res := map[string]string{"status": "ok"}
	writeJSON(w, r, http.StatusOK, res)
}

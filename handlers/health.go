package handlers

import (
	"net/http"
)

// HandleHealth reports that the process is serving requests
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

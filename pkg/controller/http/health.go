package http

import (
	"net/http"

	"github.com/m-mizutani/reldash/pkg/domain/model"
	"github.com/m-mizutani/reldash/pkg/domain/types"
)

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	status := &model.HealthStatus{
		Status:  "healthy",
		Service: "reldash",
		Version: types.Version,
	}

	writeJSON(r.Context(), w, status, http.StatusOK)
}

package api

import (
	"net/http"

	"github.com/seenimoa/finsight/internal/config"
)

// ConfigResponse is the JSON envelope returned by GET /api/v1/config.
type ConfigResponse struct {
	Config   *config.Config         `json:"config"`
	Settings []config.SettingStatus `json:"settings"`
}

// handleGetConfig returns the running configuration and where each
// overridable setting came from.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, APIResponse{
		Success: true,
		Data: ConfigResponse{
			Config:   s.cfg,
			Settings: config.CheckSettings(s.cfg),
		},
	})
}

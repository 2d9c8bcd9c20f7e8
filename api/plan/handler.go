// Package plan exposes the production-plan HTTP endpoint. It validates the
// request shape and ranges, invokes the engine and maps engine failures to
// transport-level responses; the engine itself never sees malformed input.
package plan

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/abrokate/powerplant-coding-challenge/core/logger"
	coreplan "github.com/abrokate/powerplant-coding-challenge/core/plan"
)

// NewHandler returns the HTTP handler serving POST /productionplan.
func NewHandler(planner *coreplan.Planner, log logger.Logger) http.Handler {
	if log == nil {
		log = logger.NopLogger{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "read body: "+err.Error())
			return
		}
		req, err := ParsePayload(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		assignments, err := planner.ComputePlan(req)
		if err != nil {
			if coreplan.IsInfeasible(err) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			log.Errorf("compute plan: %v", err)
			writeError(w, http.StatusInternalServerError, "internal error while computing production plan")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(assignments); err != nil {
			log.Errorf("encode response: %v", err)
		}
	})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

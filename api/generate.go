package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"prompt-designer/generate"
)

type generateRequest struct {
	Template string         `json:"template"`
	Values   map[string]any `json:"values"`
	Improve  bool           `json:"improve"`
}

type generateResponse struct {
	Resolved  string   `json:"resolved"`
	Variables []string `json:"variables"`
	Source    string   `json:"source"`
	Note      string   `json:"note,omitempty"`
}

func (h *handler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.generator.Generate(r.Context(), req.Template, req.Values, req.Improve)
	if err != nil {
		switch {
		case errors.Is(err, generate.ErrEmptyTemplate):
			writeError(w, http.StatusBadRequest, "template is required")
		case errors.Is(err, generate.ErrEnhancerUnavailable):
			writeError(w, http.StatusInternalServerError, "enhancer is not configured")
		default:
			h.log.Error().Err(err).Msg("generate failed")
			writeError(w, http.StatusInternalServerError, "failed to generate")
		}
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{
		Resolved:  res.Resolved,
		Variables: res.Variables,
		Source:    res.Source,
		Note:      res.Note,
	})
}

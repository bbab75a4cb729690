package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-deploybutton/pkg/form"
	"github.com/goliatone/go-deploybutton/pkg/model"
	"github.com/goliatone/go-deploybutton/pkg/preset"
	"github.com/goliatone/go-deploybutton/pkg/render"
	"github.com/goliatone/go-deploybutton/pkg/snippet"
)

const (
	deployURLPath   = "/api/deploy-url"
	maxBodyBytes    = 1 << 20
	actionAddEnv    = "add-env"
	actionRemoveEnv = "remove-env-"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse is the body of /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.api)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	f := s.newForm()
	if _, err := preset.Apply(f, valuesFromQuery(query)); err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to apply values", "internal_error")
		return
	}
	applyAction(f, query.Get("action"))

	themeCfg, err := s.themes.Config(query.Get("theme"), query.Get("variant"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error(), "unknown_theme")
		return
	}

	s.render(w, r, f, "page", render.RenderOptions{
		Tab:    query.Get("tab"),
		Action: r.URL.Path,
		Theme:  themeCfg,
	})
}

func (s *Server) handleDeployURLQuery(w http.ResponseWriter, r *http.Request) {
	f := s.newForm()
	if _, err := preset.Apply(f, valuesFromQuery(r.URL.Query())); err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to apply values", "internal_error")
		return
	}
	s.render(w, r, f, "json", render.RenderOptions{})
}

func (s *Server) handleDeployURLBody(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to read body", "validation_error")
		return
	}
	if err := s.api.ValidateBody(http.MethodPost, deployURLPath, body); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return
	}

	var values model.Values
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&values); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	f := s.newForm()
	if _, err := preset.Apply(f, values); err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to apply values", "internal_error")
		return
	}
	s.render(w, r, f, "json", render.RenderOptions{})
}

func (s *Server) handleSnippet(w http.ResponseWriter, r *http.Request) {
	format, err := snippet.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error(), "not_found")
		return
	}

	f := s.newForm()
	if _, err := preset.Apply(f, valuesFromQuery(r.URL.Query())); err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to apply values", "internal_error")
		return
	}
	s.render(w, r, f, string(format), render.RenderOptions{})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, f *form.Form, name string, options render.RenderOptions) {
	result, err := render.FromForm(f)
	if err != nil {
		s.logger.Error("failed to derive result", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to derive result", "internal_error")
		return
	}
	out, contentType, err := s.registry.Render(r.Context(), name, result, options)
	if err != nil {
		s.logger.Error("failed to render", "renderer", name, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to render", "internal_error")
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}

// valuesFromQuery reads field values from query parameters named after the
// form fields. Repeated env parameters keep their order, blanks included, so
// the page can round-trip empty rows.
func valuesFromQuery(query url.Values) model.Values {
	return model.Values{
		Repository:     query.Get(string(model.FieldRepository)),
		Env:            query[string(model.FieldEnv)],
		EnvDescription: query.Get(string(model.FieldEnvDescription)),
		EnvLink:        query.Get(string(model.FieldEnvLink)),
		ProjectName:    query.Get(string(model.FieldProjectName)),
		RepoName:       query.Get(string(model.FieldRepoName)),
		RedirectURL:    query.Get(string(model.FieldRedirectURL)),
		DeveloperID:    query.Get(string(model.FieldDeveloperID)),
	}
}

// applyAction performs the env list buttons of the page. Rejected actions
// leave their message on the form.
func applyAction(f *form.Form, action string) {
	switch {
	case action == actionAddEnv:
		// At the limit the list-level message is left for the page.
		_, _ = f.AddEnv()
	case strings.HasPrefix(action, actionRemoveEnv):
		index, err := strconv.Atoi(strings.TrimPrefix(action, actionRemoveEnv))
		if err != nil {
			return
		}
		_ = f.RemoveEnv(index)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode JSON", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message, code string) {
	s.writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

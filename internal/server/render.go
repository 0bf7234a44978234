package server

import (
	"bytes"
	"net/http"

	"feedindia/pkg/types"
)

func (s *Service) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) error {
	return s.renderTemplateStatus(w, r, http.StatusOK, templateName, data)
}

// renderTemplateStatus executes into a buffer first so a failing template
// never leaves a half written page behind a non-200 status.
func (s *Service) renderTemplateStatus(w http.ResponseWriter, r *http.Request, status int, templateName string, data any) error {
	userID, _ := r.Context().Value(contextKeyUserID).(string)
	userEmail, _ := r.Context().Value(contextKeyEmail).(string)

	if setter, ok := data.(types.NavbarDataSetter); ok {
		setter.SetNavbarData(types.NavbarData{
			IsAuthenticated: userID != "",
			AuthEnabled:     s.config.AuthEnabled,
			UserID:          userID,
			UserEmail:       userEmail,
		})
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func (s *Service) renderNotFound(w http.ResponseWriter, r *http.Request, data *types.NotFoundPageData) {
	if err := s.renderTemplateStatus(w, r, http.StatusNotFound, "page.not-found", data); err != nil {
		s.logger.WithError(err).Error("failed to render not found page")
		s.internalServerError(w)
	}
}

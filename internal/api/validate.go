package api

import (
	"net/http"

	"github.com/dreamplanner/inputguard/pkg/logger"
	"github.com/dreamplanner/inputguard/pkg/sanitizer"
	"github.com/dreamplanner/inputguard/pkg/validator"
)

type valueRequest struct {
	Value sanitizer.Input `json:"value"`
}

type emailResponse struct {
	Valid bool `json:"valid"`
}

func (h *Handler) validateEmail(r *http.Request, req valueRequest) Response {
	valid := req.Value.Check(validator.IsValidEmail)
	h.log.DebugContext(r.Context(), "email checked", logger.Valid(valid))
	return JSON(emailResponse{Valid: valid})
}

type registrationStrength struct {
	Score int                     `json:"score"`
	Level validator.StrengthLevel `json:"level"`
}

// passwordResponse carries both strength scales; they are computed
// independently and may disagree.
type passwordResponse struct {
	Strength     validator.StrengthResult `json:"strength"`
	Registration registrationStrength     `json:"registration"`
}

func (h *Handler) validatePassword(r *http.Request, req valueRequest) Response {
	resp := passwordResponse{
		Strength: validator.MissingPasswordStrength(),
		Registration: registrationStrength{
			Score: 0,
			Level: validator.StrengthWeak,
		},
	}

	if s, ok := req.Value.AsText(); ok {
		resp.Strength = validator.PasswordStrength(s)
		resp.Registration = registrationStrength{
			Score: validator.RegistrationScore(s),
			Level: validator.RegistrationStrength(s),
		}
	}
	return JSON(resp)
}

type requiredRequest = validator.Fields

type requiredResponse struct {
	Missing []string `json:"missing"`
}

func (h *Handler) validateRequired(r *http.Request, req requiredRequest) Response {
	missing := validator.ValidateRequired(req)
	h.log.DebugContext(r.Context(), "required fields checked",
		logger.Valid(len(missing) == 0),
		logger.Fields(missing),
	)
	return JSON(requiredResponse{Missing: missing})
}

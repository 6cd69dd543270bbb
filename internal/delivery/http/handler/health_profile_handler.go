package handler

import (
	"errors"
	"net/http"

	"dietary-advisor/internal/delivery/dto"
	"dietary-advisor/internal/usecase"
	"dietary-advisor/pkg/response"
	"dietary-advisor/pkg/validator"
)

type HealthProfileHandler struct {
	profileUsecase usecase.HealthProfileUsecase
	validator      *validator.CustomValidator
}

func NewHealthProfileHandler(profileUsecase usecase.HealthProfileUsecase, validator *validator.CustomValidator) *HealthProfileHandler {
	return &HealthProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

func (h *HealthProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveHealthProfileRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	profile, err := h.profileUsecase.SaveProfile(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "", err)
		return
	}

	response.Success(w, http.StatusOK, profile)
}

func (h *HealthProfileHandler) GetAllProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileUsecase.ListProfiles(r.Context())
	if err != nil {
		response.InternalServerError(w, "", err)
		return
	}

	response.Success(w, http.StatusOK, profiles)
}

func (h *HealthProfileHandler) SearchProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileUsecase.SearchProfiles(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.InternalServerError(w, "", err)
		return
	}

	response.Success(w, http.StatusOK, profiles)
}

func (h *HealthProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	profile, err := h.profileUsecase.GetProfile(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			response.NotFound(w, "Profile not found")
			return
		}
		response.InternalServerError(w, "", err)
		return
	}

	response.Success(w, http.StatusOK, profile)
}

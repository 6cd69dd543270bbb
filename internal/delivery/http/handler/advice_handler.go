package handler

import (
	"net/http"

	"dietary-advisor/internal/delivery/dto"
	"dietary-advisor/internal/usecase"
	"dietary-advisor/pkg/response"
	"dietary-advisor/pkg/validator"
)

type AdviceHandler struct {
	adviceUsecase usecase.DietaryAdviceUsecase
	validator     *validator.CustomValidator
}

func NewAdviceHandler(adviceUsecase usecase.DietaryAdviceUsecase, validator *validator.CustomValidator) *AdviceHandler {
	return &AdviceHandler{
		adviceUsecase: adviceUsecase,
		validator:     validator,
	}
}

func (h *AdviceHandler) GenerateAdvice(w http.ResponseWriter, r *http.Request) {
	var req dto.DietaryAdviceRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	advice, err := h.adviceUsecase.GenerateAdvice(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "", err)
		return
	}

	response.Success(w, http.StatusOK, advice)
}

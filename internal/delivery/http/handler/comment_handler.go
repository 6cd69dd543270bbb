package handler

import (
	"errors"
	"net/http"

	"dietary-advisor/internal/delivery/dto"
	"dietary-advisor/internal/usecase"
	"dietary-advisor/pkg/response"
	"dietary-advisor/pkg/validator"
)

type CommentHandler struct {
	commentUsecase usecase.CommentUsecase
	validator      *validator.CustomValidator
}

func NewCommentHandler(commentUsecase usecase.CommentUsecase, validator *validator.CustomValidator) *CommentHandler {
	return &CommentHandler{
		commentUsecase: commentUsecase,
		validator:      validator,
	}
}

func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	profileID, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	comment, err := h.commentUsecase.AddComment(r.Context(), profileID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCommentProfileNotFound):
			response.NotFound(w, "Profile not found")
		case errors.Is(err, usecase.ErrParentCommentNotFound):
			response.NotFound(w, "Parent comment not found")
		case errors.Is(err, usecase.ErrParentCommentMismatch):
			response.ValidationError(w, []validator.FieldError{{
				Field:   "parentCommentId",
				Message: "parentCommentId must reference a comment on the same profile",
			}})
		default:
			response.InternalServerError(w, "", err)
		}
		return
	}

	response.Success(w, http.StatusOK, comment)
}

func (h *CommentHandler) GetProfileComments(w http.ResponseWriter, r *http.Request) {
	profileID, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	comments, err := h.commentUsecase.CommentsForProfile(r.Context(), profileID)
	if err != nil {
		response.InternalServerError(w, "", err)
		return
	}

	response.Success(w, http.StatusOK, comments)
}

func (h *CommentHandler) GetReplyCounts(w http.ResponseWriter, r *http.Request) {
	profileID, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	counts, err := h.commentUsecase.ReplyCounts(r.Context(), profileID)
	if err != nil {
		response.InternalServerError(w, "", err)
		return
	}

	response.Success(w, http.StatusOK, counts)
}

func (h *CommentHandler) GetReplies(w http.ResponseWriter, r *http.Request) {
	commentID, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	replies, err := h.commentUsecase.RepliesForComment(r.Context(), commentID)
	if err != nil {
		response.InternalServerError(w, "", err)
		return
	}

	response.Success(w, http.StatusOK, replies)
}

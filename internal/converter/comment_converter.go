package converter

import (
	"dietary-advisor/internal/delivery/dto"
	"dietary-advisor/internal/domain/entity"
)

func CommentToResponse(comment *entity.Comment) *dto.CommentResponse {
	if comment == nil {
		return nil
	}

	return &dto.CommentResponse{
		ID:              comment.ID,
		HealthProfileID: comment.HealthProfileID,
		ParentCommentID: comment.ParentCommentID,
		AuthorName:      comment.AuthorName,
		Content:         comment.Content,
		CreatedAt:       comment.CreatedAt.UTC(),
	}
}

func CommentsToResponses(comments []entity.Comment) []dto.CommentResponse {
	responses := make([]dto.CommentResponse, len(comments))
	for i := range comments {
		responses[i] = *CommentToResponse(&comments[i])
	}
	return responses
}

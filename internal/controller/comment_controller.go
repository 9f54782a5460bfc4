package controller

import (
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	CommentService *service.CommentService
}

func NewCommentController(commentService *service.CommentService) *CommentController {
	return &CommentController{CommentService: commentService}
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create godoc
// @Summary Comment on a quiz
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Param body body CommentRequest true "comment text"
// @Success 201 {object} model.Comment
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/quizzes/{id}/comments [post]
func (c *CommentController) Create(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	quizID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.CommentService.Create(p, quizID, req.Text)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, comment)
}

// ListByQuiz godoc
// @Summary List a quiz's comments
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Success 200 {array} model.Comment
// @Failure 404 {object} util.ErrorResponse
// @Router /api/quizzes/{id}/comments [get]
func (c *CommentController) ListByQuiz(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	quizID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	comments, err := c.CommentService.ListByQuiz(p, quizID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, comments)
}

// Update godoc
// @Summary Edit a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "comment id"
// @Param body body CommentRequest true "new text"
// @Success 200 {object} model.Comment
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/comments/{id} [patch]
func (c *CommentController) Update(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.CommentService.Update(p, id, req.Text)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, comment)
}

// Delete godoc
// @Summary Delete a comment
// @Tags comments
// @Security BearerAuth
// @Param id path int true "comment id"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/comments/{id} [delete]
func (c *CommentController) Delete(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.CommentService.Delete(p, id); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

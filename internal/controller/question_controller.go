package controller

import (
	"encoding/json"

	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

type CreateQuestionRequest struct {
	Title string          `json:"title" binding:"required"`
	Data  json.RawMessage `json:"data" binding:"required"`
}

// Create godoc
// @Summary Add a question to a quiz
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quizId path int true "quiz id"
// @Param body body CreateQuestionRequest true "question payload"
// @Success 201 {object} model.Question
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/questions/quiz/{quizId} [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	quizID, ok := pathID(ctx, "quizId")
	if !ok {
		return
	}
	var req CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Create(p, quizID, req.Title, req.Data)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// ListByQuiz godoc
// @Summary List a quiz's questions
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param quizId path int true "quiz id"
// @Success 200 {array} model.Question
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/questions/quiz/{quizId} [get]
func (c *QuestionController) ListByQuiz(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	quizID, ok := pathID(ctx, "quizId")
	if !ok {
		return
	}
	questions, err := c.QuestionService.ListByQuiz(p, quizID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// Get godoc
// @Summary Get a question
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Success 200 {object} model.Question
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	question, err := c.QuestionService.Get(p, id)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

type QuestionUpdateRequest struct {
	Title *string         `json:"title"`
	Data  json.RawMessage `json:"data"`
}

// Update godoc
// @Summary Edit a question
// @Description Partial payload edit; the question type cannot change
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Param body body QuestionUpdateRequest true "fields to change"
// @Success 200 {object} model.Question
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/questions/{id} [patch]
func (c *QuestionController) Update(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req QuestionUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Update(p, id, req.Title, req.Data)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// Delete godoc
// @Summary Delete a question
// @Tags questions
// @Security BearerAuth
// @Param id path int true "question id"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.QuestionService.Delete(p, id); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

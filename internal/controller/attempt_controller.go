package controller

import (
	"encoding/json"
	"time"

	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	AttemptService *service.AttemptService
}

func NewAttemptController(attemptService *service.AttemptService) *AttemptController {
	return &AttemptController{AttemptService: attemptService}
}

type CreateAttemptRequest struct {
	AssignmentID *uint      `json:"assignmentId"`
	StartedAt    *time.Time `json:"startedAt"`
}

// Create godoc
// @Summary Start an attempt on a quiz
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Param body body CreateAttemptRequest true "attempt payload"
// @Success 201 {object} model.QuizAttempt
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/quizzes/{id}/attempts [post]
func (c *AttemptController) Create(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	quizID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req CreateAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.AttemptService.Create(p, quizID, service.CreateAttemptInput{
		AssignmentID: req.AssignmentID,
		StartedAt:    req.StartedAt,
	})
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, attempt)
}

type AttemptListQuery struct {
	util.PageQuery
	QuizID uint `form:"quizId"`
}

// List godoc
// @Summary List attempts
// @Description Returns the caller's own attempts; admins see all
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param page query int false "page"
// @Param pageSize query int false "page size"
// @Param quizId query int false "quiz filter"
// @Success 200 {object} util.PageResponse
// @Router /api/attempts [get]
func (c *AttemptController) List(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var q AttemptListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := q.Normalize(); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempts, err := c.AttemptService.List(p, service.AttemptListInput{
		Page:   q.PageQuery,
		QuizID: q.QuizID,
	})
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Paged(ctx, attempts, q.Page, q.PageSize)
}

// Get godoc
// @Summary Get an attempt
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param id path int true "attempt id"
// @Success 200 {object} model.QuizAttempt
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/attempts/{id} [get]
func (c *AttemptController) Get(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	attempt, err := c.AttemptService.Get(p, id)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}

type FinishAttemptRequest struct {
	Score *int `json:"score" binding:"required"`
}

// Finish godoc
// @Summary Finish an attempt
// @Description One-shot transition setting finishedAt and score together
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "attempt id"
// @Param body body FinishAttemptRequest true "final score"
// @Success 200 {object} model.QuizAttempt
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/attempts/{id} [patch]
func (c *AttemptController) Finish(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req FinishAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.AttemptService.Finish(p, id, *req.Score)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}

// Delete godoc
// @Summary Delete an attempt and its answers
// @Tags attempts
// @Security BearerAuth
// @Param id path int true "attempt id"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/attempts/{id} [delete]
func (c *AttemptController) Delete(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.AttemptService.Delete(p, id); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// ListAnswers godoc
// @Summary List an attempt's answers
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param id path int true "attempt id"
// @Success 200 {array} model.AttemptAnswer
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/attempts/{id}/answers [get]
func (c *AttemptController) ListAnswers(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	answers, err := c.AttemptService.ListAnswers(p, id)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, answers)
}

type AnswerPayload struct {
	QuestionID uint            `json:"questionId" binding:"required"`
	Answer     json.RawMessage `json:"answer" binding:"required"`
}

type SaveAnswersRequest struct {
	Answers []AnswerPayload `json:"answers" binding:"required,min=1,dive"`
}

// SaveAnswers godoc
// @Summary Bulk-save answers
// @Description Idempotent insert; on conflict the first write wins
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "attempt id"
// @Param body body SaveAnswersRequest true "answers"
// @Success 201 {object} object
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/attempts/{id}/answers [post]
func (c *AttemptController) SaveAnswers(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req SaveAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answers := make([]service.AnswerInput, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, service.AnswerInput{QuestionID: a.QuestionID, Answer: a.Answer})
	}
	if err := c.AttemptService.SaveAnswers(p, id, answers); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"attemptId": id, "saved": len(answers)})
}

type UpdateAnswerRequest struct {
	Answer json.RawMessage `json:"answer" binding:"required"`
}

// UpdateAnswer godoc
// @Summary Replace one answer
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "attempt id"
// @Param questionId path int true "question id"
// @Param body body UpdateAnswerRequest true "new answer"
// @Success 200 {object} object
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/attempts/{id}/answers/{questionId} [patch]
func (c *AttemptController) UpdateAnswer(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	questionID, ok := pathID(ctx, "questionId")
	if !ok {
		return
	}
	var req UpdateAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.AttemptService.UpdateAnswer(p, id, questionID, req.Answer); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"attemptId": id, "questionId": questionID})
}

// DeleteAnswer godoc
// @Summary Delete one answer
// @Tags attempts
// @Security BearerAuth
// @Param id path int true "attempt id"
// @Param questionId path int true "question id"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/attempts/{id}/answers/{questionId} [delete]
func (c *AttemptController) DeleteAnswer(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	questionID, ok := pathID(ctx, "questionId")
	if !ok {
		return
	}
	if err := c.AttemptService.DeleteAnswer(p, id, questionID); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"attemptId": id, "questionId": questionID})
}

package controller

import (
	"encoding/json"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type QuestionPayload struct {
	Title string          `json:"title" binding:"required"`
	Data  json.RawMessage `json:"data" binding:"required"`
}

type CreateQuizRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Difficulty  string            `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Subject     string            `json:"subject" binding:"required"`
	ViewType    string            `json:"viewType" binding:"required,oneof=public private unlisted"`
	Questions   []QuestionPayload `json:"questions" binding:"required,min=1,dive"`
}

// Create godoc
// @Summary Create a quiz with its questions
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateQuizRequest true "quiz payload"
// @Success 201 {object} model.Quiz
// @Failure 400 {object} util.ErrorResponse
// @Router /api/quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions := make([]service.QuestionInput, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, service.QuestionInput{Title: q.Title, Data: q.Data})
	}

	quiz, err := c.QuizService.Create(p, service.CreateQuizInput{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  model.Difficulty(req.Difficulty),
		Subject:     req.Subject,
		ViewType:    model.ViewType(req.ViewType),
		Questions:   questions,
	})
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

// Get godoc
// @Summary Get a quiz with questions
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Success 200 {object} model.Quiz
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	quiz, err := c.QuizService.Get(p, id)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

type QuizListQuery struct {
	util.PageQuery
	Subject    string `form:"subject"`
	Difficulty string `form:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	ViewType   string `form:"viewType" binding:"omitempty,oneof=public private unlisted"`
	AuthorID   uint   `form:"authorId"`
	Search     string `form:"search"`
}

// List godoc
// @Summary List quizzes
// @Description Non-admins only see public quizzes plus their own
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param page query int false "page"
// @Param pageSize query int false "page size"
// @Param subject query string false "subject filter"
// @Param difficulty query string false "difficulty filter"
// @Param viewType query string false "visibility filter"
// @Param authorId query int false "author filter"
// @Param search query string false "title/description search"
// @Success 200 {object} util.PageResponse
// @Router /api/quizzes [get]
func (c *QuizController) List(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var q QuizListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := q.Normalize(); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quizzes, err := c.QuizService.List(p, service.QuizListInput{
		Page:       q.PageQuery,
		Subject:    q.Subject,
		Difficulty: q.Difficulty,
		ViewType:   q.ViewType,
		AuthorID:   q.AuthorID,
		Search:     q.Search,
	})
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Paged(ctx, quizzes, q.Page, q.PageSize)
}

type QuizUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Difficulty  *string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Subject     *string `json:"subject"`
	ViewType    *string `json:"viewType" binding:"omitempty,oneof=public private unlisted"`
}

// Update godoc
// @Summary Update a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Param body body QuizUpdateRequest true "fields to change"
// @Success 200 {object} model.Quiz
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/quizzes/{id} [patch]
func (c *QuizController) Update(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req QuizUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	in := service.QuizUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
	}
	if req.Difficulty != nil {
		d := model.Difficulty(*req.Difficulty)
		in.Difficulty = &d
	}
	if req.ViewType != nil {
		v := model.ViewType(*req.ViewType)
		in.ViewType = &v
	}

	quiz, err := c.QuizService.Update(p, id, in)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// Delete godoc
// @Summary Delete a quiz and everything attached to it
// @Tags quizzes
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/quizzes/{id} [delete]
func (c *QuizController) Delete(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.QuizService.Delete(p, id); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

package controller

import (
	"time"

	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

type CreateAssignmentRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	DueBy       time.Time `json:"dueBy" binding:"required"`
	QuizIDs     []uint    `json:"quizIds"`
}

// Create godoc
// @Summary Create an assignment in a class
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "class id"
// @Param body body CreateAssignmentRequest true "assignment payload"
// @Success 201 {object} model.Assignment
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/classes/{id}/assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	classID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment, err := c.AssignmentService.Create(p, classID, service.CreateAssignmentInput{
		Title:       req.Title,
		Description: req.Description,
		DueBy:       req.DueBy,
		QuizIDs:     req.QuizIDs,
	})
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, assignment)
}

// ListByClass godoc
// @Summary List a class's assignments
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "class id"
// @Success 200 {array} model.Assignment
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/classes/{id}/assignments [get]
func (c *AssignmentController) ListByClass(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	classID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	assignments, err := c.AssignmentService.ListByClass(p, classID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// Get godoc
// @Summary Get an assignment
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Success 200 {object} model.Assignment
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/assignments/{id} [get]
func (c *AssignmentController) Get(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	assignment, err := c.AssignmentService.Get(p, id)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

type AssignmentUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueBy       *time.Time `json:"dueBy"`
}

// Update godoc
// @Summary Update an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Param body body AssignmentUpdateRequest true "fields to change"
// @Success 200 {object} model.Assignment
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/assignments/{id} [patch]
func (c *AssignmentController) Update(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req AssignmentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment, err := c.AssignmentService.Update(p, id, service.AssignmentUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		DueBy:       req.DueBy,
	})
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

// Delete godoc
// @Summary Delete an assignment and its quiz links
// @Tags assignments
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/assignments/{id} [delete]
func (c *AssignmentController) Delete(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.AssignmentService.Delete(p, id); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// ListQuizzes godoc
// @Summary List an assignment's quiz links
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Success 200 {array} model.AssignmentQuiz
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/assignments/{id}/quizzes [get]
func (c *AssignmentController) ListQuizzes(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	links, err := c.AssignmentService.ListQuizLinks(p, id)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, links)
}

type LinkQuizzesRequest struct {
	QuizIDs []uint `json:"quizIds" binding:"required,min=1"`
}

// LinkQuizzes godoc
// @Summary Attach quizzes to an assignment
// @Description Linking the same quiz twice is a no-op
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Param body body LinkQuizzesRequest true "quiz ids"
// @Success 200 {object} object
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/assignments/{id}/quizzes [post]
func (c *AssignmentController) LinkQuizzes(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req LinkQuizzesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.AssignmentService.LinkQuizzes(p, id, req.QuizIDs); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"assignmentId": id, "quizIds": req.QuizIDs})
}

// UnlinkQuiz godoc
// @Summary Detach a quiz from an assignment
// @Tags assignments
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Param quizId path int true "quiz id"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/assignments/{id}/quizzes/{quizId} [delete]
func (c *AssignmentController) UnlinkQuiz(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	quizID, ok := pathID(ctx, "quizId")
	if !ok {
		return
	}
	if err := c.AssignmentService.UnlinkQuiz(p, id, quizID); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"assignmentId": id, "quizId": quizID})
}

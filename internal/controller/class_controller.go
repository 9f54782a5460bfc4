package controller

import (
	"quizhub_backend/internal/policy"
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ClassController struct {
	ClassService *service.ClassService
}

func NewClassController(classService *service.ClassService) *ClassController {
	return &ClassController{ClassService: classService}
}

type ClassRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create godoc
// @Summary Create a class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ClassRequest true "class payload"
// @Success 201 {object} model.Class
// @Failure 400 {object} util.ErrorResponse
// @Router /api/classes [post]
func (c *ClassController) Create(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req ClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class, err := c.ClassService.Create(p, req.Name)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, class)
}

// List godoc
// @Summary List classes
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param page query int false "page"
// @Param pageSize query int false "page size"
// @Success 200 {object} util.PageResponse
// @Router /api/classes [get]
func (c *ClassController) List(ctx *gin.Context) {
	page, ok := pageQuery(ctx)
	if !ok {
		return
	}
	classes, err := c.ClassService.List(page)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Paged(ctx, classes, page.Page, page.PageSize)
}

// Get godoc
// @Summary Get a class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "class id"
// @Success 200 {object} model.Class
// @Failure 404 {object} util.ErrorResponse
// @Router /api/classes/{id} [get]
func (c *ClassController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	class, err := c.ClassService.Get(id)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, class)
}

type ClassUpdateRequest struct {
	Name *string `json:"name"`
}

// Update godoc
// @Summary Rename a class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "class id"
// @Param body body ClassUpdateRequest true "fields to change"
// @Success 200 {object} model.Class
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/classes/{id} [patch]
func (c *ClassController) Update(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req ClassUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class, err := c.ClassService.Update(p, id, req.Name)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, class)
}

// Delete godoc
// @Summary Delete a class and its memberships
// @Tags classes
// @Security BearerAuth
// @Param id path int true "class id"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/classes/{id} [delete]
func (c *ClassController) Delete(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.ClassService.Delete(p, id); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

type MembershipRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

// AddStudent godoc
// @Summary Enroll a student
// @Description Enrolling the same student twice is a no-op
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "class id"
// @Param body body MembershipRequest true "user to enroll"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/classes/{id}/students [post]
func (c *ClassController) AddStudent(ctx *gin.Context) {
	c.addMember(ctx, c.ClassService.AddStudent)
}

// RemoveStudent godoc
// @Summary Unenroll a student
// @Tags classes
// @Security BearerAuth
// @Param id path int true "class id"
// @Param userId path int true "user id"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/classes/{id}/students/{userId} [delete]
func (c *ClassController) RemoveStudent(ctx *gin.Context) {
	c.removeMember(ctx, c.ClassService.RemoveStudent)
}

// AddTeacher godoc
// @Summary Add a teacher
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "class id"
// @Param body body MembershipRequest true "user to add"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/classes/{id}/teachers [post]
func (c *ClassController) AddTeacher(ctx *gin.Context) {
	c.addMember(ctx, c.ClassService.AddTeacher)
}

// RemoveTeacher godoc
// @Summary Remove a teacher
// @Tags classes
// @Security BearerAuth
// @Param id path int true "class id"
// @Param userId path int true "user id"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/classes/{id}/teachers/{userId} [delete]
func (c *ClassController) RemoveTeacher(ctx *gin.Context) {
	c.removeMember(ctx, c.ClassService.RemoveTeacher)
}

func (c *ClassController) addMember(ctx *gin.Context, add func(p policy.Principal, classID, userID uint) error) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	classID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req MembershipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := add(p, classID, req.UserID); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"classId": classID, "userId": req.UserID})
}

func (c *ClassController) removeMember(ctx *gin.Context, remove func(p policy.Principal, classID, userID uint) error) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	classID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	userID, ok := pathID(ctx, "userId")
	if !ok {
		return
	}
	if err := remove(p, classID, userID); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"classId": classID, "userId": userID})
}

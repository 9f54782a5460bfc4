package controller

import (
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserController is the admin user-management surface; every route is behind
// the admin role middleware.
type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// List godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "page"
// @Param pageSize query int false "page size"
// @Success 200 {object} util.PageResponse
// @Router /api/admin/users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, ok := pageQuery(ctx)
	if !ok {
		return
	}
	users, err := c.UserService.List(page)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Paged(ctx, users, page.Page, page.PageSize)
}

// Get godoc
// @Summary Get a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} model.User
// @Failure 404 {object} util.ErrorResponse
// @Router /api/admin/users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	user, err := c.UserService.Get(id)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

type AdminCreateUserRequest struct {
	RegisterRequest
	Role string `json:"role" binding:"omitempty,oneof=user admin"`
}

// Create godoc
// @Summary Create a user
// @Description Role is honored when given and defaults to "user"
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AdminCreateUserRequest true "user payload"
// @Success 201 {object} model.User
// @Failure 400 {object} util.ErrorResponse
// @Router /api/admin/users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req AdminCreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Create(service.RegisterInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Birthday:  req.Birthday,
		Password:  req.Password,
	}, model.UserRole(req.Role))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

type UserUpdateRequest struct {
	Username  *string `json:"username"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Birthday  *string `json:"birthday"`
	Password  *string `json:"password"`
}

// Update godoc
// @Summary Update a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Param body body UserUpdateRequest true "fields to change"
// @Success 200 {object} model.User
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/admin/users/{id} [patch]
func (c *UserController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req UserUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Update(id, service.UserUpdateInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Birthday:  req.Birthday,
		Password:  req.Password,
	})
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// Delete godoc
// @Summary Delete a user
// @Tags admin
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} object
// @Failure 404 {object} util.ErrorResponse
// @Router /api/admin/users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.UserService.Delete(id); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

// SetRole godoc
// @Summary Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Param body body SetRoleRequest true "new role"
// @Success 200 {object} model.User
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/admin/users/{id}/role [post]
func (c *UserController) SetRole(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req SetRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.SetRole(id, model.UserRole(req.Role))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

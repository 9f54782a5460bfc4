package controller

import (
	"strconv"

	"quizhub_backend/internal/policy"
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// principal converts the request claims into the evaluator's identity. Routes
// behind AuthMiddleware always have claims; the nil guard covers miswiring.
func principal(ctx *gin.Context) (policy.Principal, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return policy.Principal{}, false
	}
	return policy.Principal{UserID: claims.UserID, Role: claims.Role}, true
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, name+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func pageQuery(ctx *gin.Context) (util.PageQuery, bool) {
	var page util.PageQuery
	if err := ctx.ShouldBindQuery(&page); err != nil {
		util.BadRequest(ctx, err.Error())
		return page, false
	}
	if err := page.Normalize(); err != nil {
		util.BadRequest(ctx, err.Error())
		return page, false
	}
	return page, true
}

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// RegisterRequest is the self-registration payload.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Birthday  string `json:"birthday" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates an account with role "user"
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "registration payload"
// @Success 201 {object} model.User
// @Failure 400 {object} util.ErrorResponse
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(service.RegisterInput{
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
	util.Created(ctx, user)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary Log in
// @Description Exchanges credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} LoginResponse
// @Failure 403 {object} util.ErrorResponse
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, LoginResponse{Token: token})
}

// Profile godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} util.ErrorResponse
// @Router /api/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	user, err := c.AuthService.GetProfile(p.UserID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

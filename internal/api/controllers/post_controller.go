package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"neurobridge/internal/models/request_models"
	"neurobridge/internal/services"
	"neurobridge/pkg/utils"
)

type PostController struct {
	postService     services.PostServiceInterface
	accessService   services.AccessServiceInterface
	trackingService services.TrackingServiceInterface
}

func NewPostController(
	postService services.PostServiceInterface,
	accessService services.AccessServiceInterface,
	trackingService services.TrackingServiceInterface,
) *PostController {
	return &PostController{
		postService:     postService,
		accessService:   accessService,
		trackingService: trackingService,
	}
}

// CreatePost godoc
// @Summary Create a post
// @Description Create a new content post owned by the authenticated user
// @Tags Posts
// @Accept json
// @Produce json
// @Param request body request_models.CreatePostRequest true "Create post payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts [post]
func (p *PostController) CreatePost(c *gin.Context) {
	var req request_models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetInt64("user_id")
	resp, err := p.postService.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Post created successfully")
}

// GetPost godoc
// @Summary Get a post by id
// @Tags Posts
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/{post_id} [get]
func (p *PostController) GetPost(c *gin.Context) {
	postID := c.Param("post_id")

	resp, err := p.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if userID := c.GetInt64("user_id"); userID != 0 {
		if err := p.trackingService.RecordPostView(c.Request.Context(), userID); err != nil {
			log.Printf("failed to record post view for user %d: %v", userID, err)
		}
	}

	utils.RespondSuccess(c, resp, "Post retrieved successfully")
}

// ListPosts godoc
// @Summary List posts
// @Tags Posts
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts [get]
func (p *PostController) ListPosts(c *gin.Context) {
	offset, limit := paginationParams(c, 20)

	resp, err := p.postService.ListPosts(c.Request.Context(), offset, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Posts retrieved successfully")
}

// ListUserPosts godoc
// @Summary List posts authored by a user
// @Tags Posts
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/user/{user_id} [get]
func (p *PostController) ListUserPosts(c *gin.Context) {
	userID, ok := pathInt64(c, "user_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "user_id must be an integer")
		return
	}
	offset, limit := paginationParams(c, 20)

	resp, err := p.postService.ListUserPosts(c.Request.Context(), userID, offset, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Posts retrieved successfully")
}

// CheckAccess godoc
// @Summary Check whether the authenticated user can view a post
// @Description Evaluates scheduling, tier and purchase history for a post
// @Tags Posts
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/{post_id}/access [get]
func (p *PostController) CheckAccess(c *gin.Context) {
	postID := c.Param("post_id")
	userID := c.GetInt64("user_id")

	resp, err := p.accessService.CanViewPost(c.Request.Context(), userID, postID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Access evaluated")
}

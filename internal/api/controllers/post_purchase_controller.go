package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"neurobridge/internal/services"
	"neurobridge/pkg/utils"
)

type PostPurchaseController struct {
	postPurchaseService services.PostPurchaseServiceInterface
}

func NewPostPurchaseController(postPurchaseService services.PostPurchaseServiceInterface) *PostPurchaseController {
	return &PostPurchaseController{
		postPurchaseService: postPurchaseService,
	}
}

// ListUserPurchases godoc
// @Summary List a user's purchased posts
// @Tags Purchases
// @Produce json
// @Param user_id path int true "User ID"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /post-purchases/user/{user_id} [get]
func (pp *PostPurchaseController) ListUserPurchases(c *gin.Context) {
	userID, ok := pathInt64(c, "user_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "user_id must be an integer")
		return
	}
	offset, limit := paginationParams(c, 20)

	resp, err := pp.postPurchaseService.ListUserPurchases(c.Request.Context(), userID, offset, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Purchases retrieved successfully")
}

// ListPurchasedPosts godoc
// @Summary List the full posts a user has purchased
// @Tags Purchases
// @Produce json
// @Param user_id path int true "User ID"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /post-purchases/user-posts/{user_id} [get]
func (pp *PostPurchaseController) ListPurchasedPosts(c *gin.Context) {
	userID, ok := pathInt64(c, "user_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "user_id must be an integer")
		return
	}
	offset, limit := paginationParams(c, 20)

	resp, err := pp.postPurchaseService.ListPurchasedPosts(c.Request.Context(), userID, offset, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Purchased posts retrieved successfully")
}

// ListPostPurchases godoc
// @Summary List purchases of a post
// @Tags Purchases
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /post-purchases/post/{post_id} [get]
func (pp *PostPurchaseController) ListPostPurchases(c *gin.Context) {
	postID := c.Param("post_id")

	resp, err := pp.postPurchaseService.ListPostPurchases(c.Request.Context(), postID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Purchases retrieved successfully")
}

// ListAllPurchases godoc
// @Summary List all purchases
// @Tags Purchases
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /post-purchases [get]
func (pp *PostPurchaseController) ListAllPurchases(c *gin.Context) {
	offset, limit := paginationParams(c, 50)

	resp, err := pp.postPurchaseService.ListAllPurchases(c.Request.Context(), offset, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Purchases retrieved successfully")
}

// PostStats godoc
// @Summary Aggregate purchase stats for a post
// @Tags Purchases
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /post-purchases/post/{post_id}/stats [get]
func (pp *PostPurchaseController) PostStats(c *gin.Context) {
	postID := c.Param("post_id")

	resp, err := pp.postPurchaseService.PostStats(c.Request.Context(), postID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Purchase stats retrieved successfully")
}

// CheckPurchase godoc
// @Summary Check whether a user has purchased a post
// @Tags Purchases
// @Produce json
// @Param user_id path int true "User ID"
// @Param post_id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /post-purchases/check/{user_id}/{post_id} [get]
func (pp *PostPurchaseController) CheckPurchase(c *gin.Context) {
	userID, ok := pathInt64(c, "user_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "user_id must be an integer")
		return
	}
	postID := c.Param("post_id")

	resp, err := pp.postPurchaseService.CheckPurchase(c.Request.Context(), userID, postID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Purchase check completed")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"neurobridge/internal/models/request_models"
	"neurobridge/internal/services"
	"neurobridge/pkg/utils"
)

type CollectionController struct {
	collectionService services.CollectionServiceInterface
}

func NewCollectionController(collectionService services.CollectionServiceInterface) *CollectionController {
	return &CollectionController{
		collectionService: collectionService,
	}
}

// CreateCollection godoc
// @Summary Create a collection
// @Tags Collections
// @Accept json
// @Produce json
// @Param request body request_models.CreateCollectionRequest true "Create collection payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /collections [post]
func (cc *CollectionController) CreateCollection(c *gin.Context) {
	var req request_models.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetInt64("user_id")
	resp, err := cc.collectionService.CreateCollection(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Collection created successfully")
}

// GetCollection godoc
// @Summary Get a collection by id
// @Tags Collections
// @Produce json
// @Param collection_id path int true "Collection ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /collections/{collection_id} [get]
func (cc *CollectionController) GetCollection(c *gin.Context) {
	collectionID, ok := pathInt64(c, "collection_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "collection_id must be an integer")
		return
	}

	resp, err := cc.collectionService.GetCollection(c.Request.Context(), collectionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Collection retrieved successfully")
}

// ListCollections godoc
// @Summary List collections
// @Tags Collections
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /collections [get]
func (cc *CollectionController) ListCollections(c *gin.Context) {
	offset, limit := paginationParams(c, 20)

	resp, err := cc.collectionService.ListCollections(c.Request.Context(), offset, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Collections retrieved successfully")
}

// ListUserCollections godoc
// @Summary List collections owned by a user
// @Tags Collections
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /collections/user/{user_id} [get]
func (cc *CollectionController) ListUserCollections(c *gin.Context) {
	userID, ok := pathInt64(c, "user_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "user_id must be an integer")
		return
	}

	resp, err := cc.collectionService.ListUserCollections(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Collections retrieved successfully")
}

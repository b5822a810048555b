package handlers

import (
	"errors"

	"premium-blog-api/helper"
	"premium-blog-api/models"
	"premium-blog-api/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService    services.PostService
	accountService services.AccountService
	Helper         *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, accountService services.AccountService) *PostHandler {
	return &PostHandler{
		postService:    postService,
		accountService: accountService,
		Helper:         helper.NewHTTPHelper(),
	}
}

// viewer resolves the entitlement snapshot for the request, or nil for
// anonymous viewers. Entitlement is always re-read from the snapshot rather
// than trusted from the token. A snapshot lookup failure is surfaced instead
// of silently downgrading an authenticated viewer to anonymous; only a token
// for a since-deleted account falls back to anonymous.
func (h *PostHandler) viewer(c *gin.Context) (*models.User, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		return nil, true
	}
	user, err := h.accountService.CurrentUser(userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, true
		}
		h.Helper.SendServiceError(c, err)
		return nil, false
	}
	return user, true
}

func (h *PostHandler) actor(c *gin.Context) (*models.User, bool) {
	user, err := h.accountService.CurrentUser(c.GetString("user_id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return nil, false
	}
	return user, true
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	author, ok := h.actor(c)
	if !ok {
		return
	}

	post, err := h.postService.Create(req, author)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Post created", post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	actor, ok := h.actor(c)
	if !ok {
		return
	}

	post, err := h.postService.Update(c.Param("id"), req, actor)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Post updated", post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Param("id"), actor); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Post deleted", h.Helper.EmptyJsonMap())
}

func (h *PostHandler) GetMyPosts(c *gin.Context) {
	var params models.PostListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	params = params.Normalized()

	posts, total, err := h.postService.ListByAuthor(c.GetString("user_id"), params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Posts loaded", map[string]interface{}{
		"posts":      posts,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, int(total)),
	})
}

func (h *PostHandler) GetPublicPosts(c *gin.Context) {
	var params models.PostListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	params = params.Normalized()

	viewer, ok := h.viewer(c)
	if !ok {
		return
	}

	views, total, err := h.postService.ListAccessible(viewer, params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Posts loaded", map[string]interface{}{
		"posts":      views,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, int(total)),
	})
}

func (h *PostHandler) GetPublicPost(c *gin.Context) {
	viewer, ok := h.viewer(c)
	if !ok {
		return
	}

	view, err := h.postService.GetForViewer(c.Param("id"), viewer)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Post loaded", view)
}

func (h *PostHandler) SearchPosts(c *gin.Context) {
	var params models.PostListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	params = params.Normalized()

	viewer, ok := h.viewer(c)
	if !ok {
		return
	}

	views, total, err := h.postService.Search(params.Query, viewer, params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Search results", map[string]interface{}{
		"posts":      views,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, int(total)),
	})
}

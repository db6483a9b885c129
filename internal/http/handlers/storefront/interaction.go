package storefront

import (
	"github.com/restyle-next/internal/http/handlers/shared"
	"github.com/restyle-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CommentRequest 评论请求
type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// ToggleFavorite 切换收藏
// 乐观翻转与回滚都发生在互动层，这里只返回最终值
func (h *Handler) ToggleFavorite(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	favorited, err := sess.Interactions.ToggleFavorite(c.Request.Context(), sess.Credential(), c.Param("id"))
	if err != nil {
		shared.RespondBackendError(c, err)
		return
	}
	response.Success(c, gin.H{"favorited": favorited})
}

// ToggleLike 切换点赞，返回服务端权威计数
func (h *Handler) ToggleLike(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	state, err := sess.Interactions.ToggleLike(c.Request.Context(), sess.Credential(), c.Param("id"))
	if err != nil {
		shared.RespondBackendError(c, err)
		return
	}
	response.Success(c, gin.H{"likes": state.Count, "liked": state.Liked})
}

// AddComment 发表评论
func (h *Handler) AddComment(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "comment text is required", err)
		return
	}

	if sess.Identity() == nil {
		shared.RespondError(c, response.CodeUnauthorized, "Please log in to comment", nil)
		return
	}

	comments, err := h.CatalogService.AddComment(c.Request.Context(), sess.Credential(), c.Param("id"), req.Text)
	if err != nil {
		shared.RespondBackendError(c, err)
		return
	}
	response.Success(c, gin.H{"comments": comments})
}

// DeleteComment 删除评论
func (h *Handler) DeleteComment(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	if sess.Identity() == nil {
		shared.RespondError(c, response.CodeUnauthorized, "Please log in to comment", nil)
		return
	}

	comments, err := h.CatalogService.DeleteComment(c.Request.Context(), sess.Credential(), c.Param("id"), c.Param("comment_id"))
	if err != nil {
		shared.RespondBackendError(c, err)
		return
	}
	response.Success(c, gin.H{"comments": comments})
}

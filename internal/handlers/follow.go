package handlers

import (
	"net/http"
	"yatube/internal/db"
	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/utils"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct{}

func NewFollowHandler() *FollowHandler {
	return &FollowHandler{}
}

func profileURL(username string) string {
	return "/profile/" + username + "/"
}

// FollowIndex - feed of posts by authors the current user follows.
func (h *FollowHandler) FollowIndex(c *gin.Context) {
	user := middleware.CurrentUser(c)

	followed := db.DB.Model(&models.Follow{}).
		Select("author_id").
		Where("user_id = ?", user.ID)

	page := utils.PaginatePosts(c, db.DB.Where("author_id IN (?)", followed))

	Render(c, http.StatusOK, "posts/follow.html", gin.H{
		"Title": "Followed authors",
		"Page":  page,
	})
}

// Follow subscribes the current user to an author. Idempotent: a
// repeat call changes nothing. Following yourself is silently skipped.
func (h *FollowHandler) Follow(c *gin.Context) {
	user := middleware.CurrentUser(c)
	username := c.Param("username")

	if username == user.Username {
		c.Redirect(http.StatusFound, profileURL(username))
		return
	}

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	follow := models.Follow{UserID: user.ID, AuthorID: author.ID}
	db.DB.Where(models.Follow{UserID: user.ID, AuthorID: author.ID}).FirstOrCreate(&follow)

	c.Redirect(http.StatusFound, profileURL(username))
}

// Unfollow removes an existing subscription; asking to drop one that
// does not exist is a 404.
func (h *FollowHandler) Unfollow(c *gin.Context) {
	user := middleware.CurrentUser(c)
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	var follow models.Follow
	if err := db.DB.Where("user_id = ? AND author_id = ?", user.ID, author.ID).
		First(&follow).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Not following this author")
		return
	}

	db.DB.Delete(&follow)

	c.Redirect(http.StatusFound, profileURL(username))
}

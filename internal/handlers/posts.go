package handlers

import (
	"fmt"
	"net/http"
	"yatube/internal/db"
	"yatube/internal/forms"
	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/services"
	"yatube/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

func postDetailURL(postID uint) string {
	return fmt.Sprintf("/posts/%d/", postID)
}

// loadGroups fetches the group list for the post form select box.
func loadGroups() []models.Group {
	var groups []models.Group
	db.DB.Order("id ASC").Find(&groups)
	return groups
}

// Index - global feed, newest first. The full response is cached for
// IndexCacheTTL by the CachePage middleware on this route.
func (h *PostHandler) Index(c *gin.Context) {
	page := utils.PaginatePosts(c, db.DB)

	Render(c, http.StatusOK, "posts/index.html", gin.H{
		"Title": "Latest updates",
		"Page":  page,
	})
}

// GroupPosts - feed of a single group, looked up by slug.
func (h *PostHandler) GroupPosts(c *gin.Context) {
	slug := c.Param("slug")

	var group models.Group
	if err := db.DB.Where("slug = ?", slug).First(&group).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Group not found")
		return
	}

	page := utils.PaginatePosts(c, db.DB.Where("group_id = ?", group.ID))

	Render(c, http.StatusOK, "posts/group_list.html", gin.H{
		"Title": group.Title,
		"Group": group,
		"Page":  page,
	})
}

// Profile - an author's feed plus whether the requester follows them.
// Following is always false for anonymous visitors and for the author
// viewing their own page.
func (h *PostHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	following := false
	if user := middleware.CurrentUser(c); user != nil && user.ID != author.ID {
		var follow models.Follow
		following = db.DB.Where("user_id = ? AND author_id = ?", user.ID, author.ID).
			First(&follow).Error == nil
	}

	page := utils.PaginatePosts(c, db.DB.Where("author_id = ?", author.ID))

	Render(c, http.StatusOK, "posts/profile.html", gin.H{
		"Title":     author.Username,
		"Author":    author,
		"Page":      page,
		"Following": following,
	})
}

// Detail - single post, its comments in creation order, and a blank
// comment form.
func (h *PostHandler) Detail(c *gin.Context) {
	postID := utils.StringToInt(c.Param("post_id"))

	var post models.Post
	if err := db.DB.Preload("Author").Preload("Group").First(&post, postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	var comments []models.Comment
	db.DB.Preload("Author").
		Where("post_id = ?", post.ID).
		Order("created_at ASC, id ASC").
		Find(&comments)

	Render(c, http.StatusOK, "posts/post_detail.html", gin.H{
		"Title":    post.String(),
		"Post":     post,
		"PostHTML": utils.RenderMarkdown(post.Text),
		"Comments": comments,
		"Form":     &forms.CommentForm{},
	})
}

func (h *PostHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "posts/create_post.html", gin.H{
		"Title":  "New post",
		"Form":   &forms.PostForm{},
		"Groups": loadGroups(),
	})
}

func (h *PostHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var form forms.PostForm
	_ = c.ShouldBind(&form)

	if !form.Validate() {
		Render(c, http.StatusOK, "posts/create_post.html", gin.H{
			"Title":  "New post",
			"Form":   &form,
			"Groups": loadGroups(),
		})
		return
	}

	post := models.Post{
		Text:     form.Text,
		AuthorID: user.ID,
		GroupID:  form.Group(),
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := services.SavePostImage(file)
		if err != nil {
			RenderError(c, http.StatusInternalServerError, "Failed to save image")
			return
		}
		post.Image = path
	}

	if err := db.DB.Create(&post).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to save post")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

func (h *PostHandler) ShowEdit(c *gin.Context) {
	user := middleware.CurrentUser(c)
	postID := utils.StringToInt(c.Param("post_id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	// Only the author may edit; everyone else lands on the detail page.
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, postDetailURL(post.ID))
		return
	}

	form := forms.PostForm{Text: post.Text}
	if post.GroupID != nil {
		form.GroupID = fmt.Sprint(*post.GroupID)
	}

	Render(c, http.StatusOK, "posts/create_post.html", gin.H{
		"Title":  "Edit post",
		"Form":   &form,
		"Groups": loadGroups(),
		"IsEdit": true,
		"Post":   post,
	})
}

// Update edits text/group/image in place. Author and creation time
// never change.
func (h *PostHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	postID := utils.StringToInt(c.Param("post_id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, postDetailURL(post.ID))
		return
	}

	var form forms.PostForm
	_ = c.ShouldBind(&form)

	if !form.Validate() {
		Render(c, http.StatusOK, "posts/create_post.html", gin.H{
			"Title":  "Edit post",
			"Form":   &form,
			"Groups": loadGroups(),
			"IsEdit": true,
			"Post":   post,
		})
		return
	}

	updates := map[string]interface{}{
		"text":     form.Text,
		"group_id": form.Group(),
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := services.SavePostImage(file)
		if err != nil {
			RenderError(c, http.StatusInternalServerError, "Failed to save image")
			return
		}
		updates["image"] = path
	}

	if err := db.DB.Model(&post).Updates(updates).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to save post")
		return
	}

	c.Redirect(http.StatusFound, postDetailURL(post.ID))
}

// AddComment attaches a comment to a post. An empty form creates
// nothing; either way the client ends up back on the detail page.
func (h *PostHandler) AddComment(c *gin.Context) {
	user := middleware.CurrentUser(c)
	postID := utils.StringToInt(c.Param("post_id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	var form forms.CommentForm
	_ = c.ShouldBind(&form)

	if form.Validate() {
		comment := models.Comment{
			PostID:   post.ID,
			AuthorID: user.ID,
			Text:     form.Text,
		}
		db.DB.Create(&comment)
	}

	c.Redirect(http.StatusFound, postDetailURL(post.ID))
}

package utils

import (
	"math"
	"yatube/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PerPage is the fixed feed page size.
const PerPage = 10

// Page is one slice of a feed plus the numbers the pagination
// include needs.
type Page struct {
	Posts       []models.Post
	Number      int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
}

func (p Page) PreviousNumber() int { return p.Number - 1 }
func (p Page) NextNumber() int     { return p.Number + 1 }

// PaginatePosts runs the given post query as one fixed-size page,
// newest first. Page selection follows the usual lenient rules: the
// "page" query parameter defaults to 1, garbage parses as 1, and a
// number past the end yields the last page rather than an empty one.
func PaginatePosts(c *gin.Context, query *gorm.DB) Page {
	// Session clones keep the caller's conditions reusable across the
	// count and the page fetch.
	var total int64
	query.Session(&gorm.Session{}).Model(&models.Post{}).Count(&total)

	totalPages := int(math.Ceil(float64(total) / float64(PerPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	number := StringToInt(c.Query("page"))
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	var posts []models.Post
	query.Session(&gorm.Session{}).
		Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").
		Limit(PerPage).
		Offset((number - 1) * PerPage).
		Find(&posts)

	return Page{
		Posts:       posts,
		Number:      number,
		TotalPages:  totalPages,
		HasPrevious: number > 1,
		HasNext:     number < totalPages,
	}
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookreview-backend/pkg/logger"
)

// Two envelope shapes coexist on purpose: catalog listings use the
// count/next/previous/results shape, review endpoints use message + data.
// Call sites depend on the difference, so it is preserved rather than unified.

// List is the paginated envelope for the author and book collections.
type List struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// Envelope is the message/data shape used by the review endpoints. The
// pagination fields are only rendered when a second page exists.
type Envelope struct {
	Message  string      `json:"message"`
	Count    *int        `json:"count,omitempty"`
	Next     *string     `json:"next,omitempty"`
	Previous *string     `json:"previous,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

func Paginated(c *gin.Context, count int, next, previous *string, results interface{}) {
	c.JSON(http.StatusOK, List{
		Count:    count,
		Next:     next,
		Previous: previous,
		Results:  results,
	})
}

// Message sends a bare explanatory message body.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Detail sends the fixed-shape body used for auth failures.
func Detail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

func Forbidden(c *gin.Context) {
	Detail(c, http.StatusForbidden, "You do not have permission to perform this action.")
}

func Unauthenticated(c *gin.Context) {
	Detail(c, http.StatusUnauthorized, "Authentication credentials were not provided.")
}

func NotFound(c *gin.Context) {
	Detail(c, http.StatusNotFound, "Not found.")
}

// ValidationError renders ozzo field errors as a field-scoped body, anything
// else as a single detail message.
func ValidationError(c *gin.Context, err error) {
	if fieldErrs, ok := err.(validation.Errors); ok {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}
	Detail(c, http.StatusBadRequest, err.Error())
}

func ServerError(c *gin.Context, err error) {
	logger.Error("request failed", err)
	Detail(c, http.StatusInternalServerError, "Internal server error.")
}

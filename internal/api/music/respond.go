package music

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"floppotron-api/internal/catalog"

	"github.com/gin-gonic/gin"
)

// respondError maps a catalog outcome to a status code. notFoundMsg
// replaces the generic sentinel text so each endpoint can name what was
// missing.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var constraint *catalog.ConstraintError

	switch {
	case catalog.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.As(err, &constraint):
		c.JSON(http.StatusConflict, gin.H{"error": constraint.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// listParams assembles the catalog paging spec from the query string plus
// the optional JSON body carrying order/filter, mirroring how clients of
// the original API passed those specs.
func listParams(c *gin.Context) (catalog.ListParams, bool) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(catalog.DefaultLimit)))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return catalog.ListParams{}, false
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", strconv.Itoa(catalog.DefaultOffset)))
	if err != nil || offset < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offset"})
		return catalog.ListParams{}, false
	}

	params := catalog.ListParams{Limit: limit, Offset: offset}

	if strings.Contains(c.ContentType(), "application/json") && c.Request.ContentLength != 0 {
		var body ListBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return catalog.ListParams{}, false
		}
		params.Order = body.Order
		params.Filter = body.Filter
	}

	return params, true
}

package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/ctabo91/dreamhost-backend/models"

	"github.com/gin-gonic/gin"
)

// respondError maps a typed service error to the response envelope. Anything
// untyped is a 500; its detail is logged but never echoed to the client.
func respondError(c *gin.Context, err error) {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr})
		return
	}

	log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": &models.APIError{Status: http.StatusInternalServerError, Message: "something went wrong"},
	})
}

func badRequest(c *gin.Context, msg string) {
	respondError(c, models.NewBadRequest(msg))
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// bindPartial decodes the sparse body used by every partial-update endpoint.
func bindPartial(c *gin.Context) (map[string]interface{}, bool) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		badRequest(c, "request body must be a JSON object")
		return nil, false
	}
	return fields, true
}

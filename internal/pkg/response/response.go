// Package response provides the uniform JSON envelope shared by every
// endpoint: {success, data?, count?, message?, error?}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 response carrying data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// OKCount sends a 200 response carrying a collection and its size.
func OKCount(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": data})
}

// OKMessage sends a 200 response with a human-readable message. Data is
// omitted when nil.
func OKMessage(c *gin.Context, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

// Created sends a 201 response with a message and the stored record.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message, "data": data})
}

// BadRequest sends a 400 validation-failure response. The error text is
// returned verbatim to the caller.
func BadRequest(c *gin.Context, message string, err error) {
	body := gin.H{"success": false, "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, body)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "message": message})
}

// InternalError sends a 500 response for unexpected store-level failures.
func InternalError(c *gin.Context, message string, err error) {
	body := gin.H{"success": false, "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}

// RouteNotFound is the NoRoute handler for unmatched paths.
func RouteNotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "message": "route not found"})
}

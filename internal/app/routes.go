package app

import (
	"net/http"

	"github.com/atelier-works/projects-api/internal/modules/project"
	"github.com/atelier-works/projects-api/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(response.RouteNotFound)
	r.GET("/", describeAPI)

	root := r.Group("")
	svc := project.NewService(a.db)
	project.NewHandler(svc).RegisterRoutes(root)
}

// describeAPI lists every endpoint, mirroring the root description the API
// has always served.
func describeAPI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Project Management API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"GET /projects":                        "list all projects",
			"GET /projects/:id":                    "fetch one project",
			"POST /projects":                       "create a project",
			"PUT /projects/:id":                    "update a project",
			"DELETE /projects/:id":                 "delete a project",
			"GET /projects/status/:status":         "filter by status",
			"GET /projects/category/:category":     "filter by category",
			"POST /projects/:id/images":            "add an image",
			"DELETE /projects/:id/images/:imageId": "remove an image",
		},
	})
}

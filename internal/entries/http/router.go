package http

import "github.com/gin-gonic/gin"

// Register registers the entry routes
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.GetStatus)
	r.POST("/store", h.StoreEntry)
	r.GET("/fetch", h.FetchEntries)
}

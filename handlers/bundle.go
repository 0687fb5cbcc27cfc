// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Travel endpoints
	QueryHandler        gin.HandlerFunc
	HistoryHandler      gin.HandlerFunc
	ClearHistoryHandler gin.HandlerFunc
}

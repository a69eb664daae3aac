// File: handlers/lineauth.go
package handlers

import (
	"net/http"

	"washq/services/lineauth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LineAuthHandler exposes the LINE Login callback.
type LineAuthHandler struct {
	Service lineauth.LineAuthService
}

// NewLineAuthHandler creates a new LineAuthHandler.
func NewLineAuthHandler(svc lineauth.LineAuthService) *LineAuthHandler {
	return &LineAuthHandler{Service: svc}
}

// CallbackHandler handles POST /auth/line/callback. The frontend posts the
// authorization code it received from LINE; the response carries the LINE
// userId bound to that code.
func (lh *LineAuthHandler) CallbackHandler(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing code parameter"})
		return
	}

	userID, err := lh.Service.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		getLogger(c).Error("LINE login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate with LINE"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID})
}

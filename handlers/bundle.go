// File: handlers/bundle.go
package handlers

import (
	adminRepoPkg "washq/database/repository/admin"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	AdminRepo adminRepoPkg.AdminRepository

	// Booking endpoints
	CreateBooking  gin.HandlerFunc
	GetBookings    gin.HandlerFunc
	GetSummary     gin.HandlerFunc
	UpdateBooking  gin.HandlerFunc
	DeleteBooking  gin.HandlerFunc
	GetBookedTimes gin.HandlerFunc
	CheckStatus    gin.HandlerFunc

	// Admin endpoints
	AdminLogin gin.HandlerFunc

	// LINE Login endpoints
	LineCallback gin.HandlerFunc
}

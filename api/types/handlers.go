package types

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/segment-editor/internal/models"
	apperrors "github.com/killallgit/segment-editor/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ParseSegmentIDParam extracts a segment id from the URL. Integers are
// persisted ids, anything else a temporary id.
func ParseSegmentIDParam(c *gin.Context, paramName string) (models.SegmentID, bool) {
	id, err := models.ParseSegmentID(c.Param(paramName))
	if err != nil {
		SendBadRequest(c, "Invalid "+paramName)
		return models.SegmentID{}, false
	}
	return id, true
}

// ParseFloatQuery reads an optional float query parameter. A missing value
// yields fallback; a malformed one sends a bad request.
func ParseFloatQuery(c *gin.Context, name string, fallback float64) (float64, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return fallback, true
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		SendBadRequest(c, "Invalid "+name)
		return 0, false
	}
	return value, true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Status: StatusError, Error: message})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Status: StatusError, Error: message})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Status: StatusError, Error: message})
}

// SendAppError maps an application error to its HTTP status. Internal
// errors hide their message behind fallback.
func SendAppError(c *gin.Context, err error, fallback string) {
	status := apperrors.GetHTTPCode(err)
	resp := ErrorResponse{
		Status: StatusError,
		Error:  string(apperrors.GetCode(err)),
	}
	if status >= http.StatusInternalServerError {
		resp.Message = fallback
	} else {
		resp.Message = err.Error()
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			resp.Message = appErr.Message
			if len(appErr.Details) > 0 {
				resp.Details = appErr.Details
			}
		}
	}
	c.JSON(status, resp)
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

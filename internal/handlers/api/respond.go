package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
)

// ownerHeader carries the caller identity. The product has no account
// system; each browser profile sends a stable identifier and defaults
// to a single local seat.
const ownerHeader = "X-User-ID"

const defaultOwner = "local"

func ownerID(c *gin.Context) string {
	if owner := c.GetHeader(ownerHeader); owner != "" {
		return owner
	}
	return defaultOwner
}

// statusFromCode maps application error codes to HTTP statuses
func statusFromCode(code apperrors.Code) int {
	switch code {
	case apperrors.CodeInvalidArgument, apperrors.CodeValidation:
		return http.StatusBadRequest
	case apperrors.CodePermissionDenied:
		return http.StatusForbidden
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	case apperrors.CodeAlreadyExists, apperrors.CodeFailedPrecondition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a coded error as JSON. Internal failures keep
// their detail out of the response body.
func respondError(c *gin.Context, err error) {
	code := apperrors.GetCode(err)
	status := statusFromCode(code)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		message = "internal error"
	}

	c.JSON(status, gin.H{
		"error": message,
		"code":  string(code),
	})
}

// bindJSON decodes the request body and reports a 400 on failure.
// Returns false when the caller should stop handling the request.
func bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		respondError(c, apperrors.WrapWithCode(err, apperrors.CodeInvalidArgument, "invalid request body"))
		return false
	}
	return true
}

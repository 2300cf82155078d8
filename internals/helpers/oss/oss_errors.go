// file: internals/helpers/oss/oss_errors.go
package helper

import (
	"errors"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/gofiber/fiber/v2"
)

// MapStorageError turns a storage failure into (HTTP status, user-facing
// message). We branch on the SDK's typed error codes, not on message text,
// so the mapping survives SDK upgrades.
func MapStorageError(err error) (int, string) {
	if err == nil {
		return 0, ""
	}

	var se oss.ServiceError
	if errors.As(err, &se) {
		switch se.Code {
		case "NoSuchBucket":
			return fiber.StatusBadGateway, "Storage bucket is missing. Ask support to provision media storage for your church."
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return fiber.StatusForbidden, "No permission to write to media storage. Check the storage credentials."
		case "EntityTooLarge":
			return fiber.StatusRequestEntityTooLarge, "File is too large for media storage."
		case "InvalidArgument":
			return fiber.StatusUnprocessableEntity, "Media storage rejected the request parameters."
		case "NoSuchKey":
			return fiber.StatusNotFound, "File no longer exists in media storage."
		case "RequestTimeout":
			return fiber.StatusGatewayTimeout, "Media storage timed out. Try again."
		}
		return fiber.StatusBadGateway, "Media storage refused the request (" + se.Code + ")."
	}

	// local guards raised before the SDK was even called
	if strings.Contains(err.Error(), "file too large") {
		return fiber.StatusRequestEntityTooLarge, "File is too large for media storage."
	}
	if strings.Contains(err.Error(), "unsupported image format") {
		return fiber.StatusUnsupportedMediaType, "Unsupported image format (use jpg/png/webp)."
	}
	if strings.Contains(err.Error(), "missing env") {
		return fiber.StatusServiceUnavailable, "Media storage is not configured for this deployment."
	}

	return fiber.StatusInternalServerError, "Upload failed. Try again."
}

package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestMapStorageErrorByCode(t *testing.T) {
	cases := []struct {
		code       string
		wantStatus int
	}{
		{"NoSuchBucket", fiber.StatusBadGateway},
		{"AccessDenied", fiber.StatusForbidden},
		{"EntityTooLarge", fiber.StatusRequestEntityTooLarge},
		{"InvalidArgument", fiber.StatusUnprocessableEntity},
		{"NoSuchKey", fiber.StatusNotFound},
		{"RequestTimeout", fiber.StatusGatewayTimeout},
		{"SomethingNew", fiber.StatusBadGateway}, // unknown codes stay a gateway problem
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			status, msg := MapStorageError(oss.ServiceError{Code: tc.code})
			assert.Equal(t, tc.wantStatus, status)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapStorageErrorWrappedServiceError(t *testing.T) {
	wrapped := fmt.Errorf("upload: %w", oss.ServiceError{Code: "NoSuchBucket"})
	status, _ := MapStorageError(wrapped)
	assert.Equal(t, fiber.StatusBadGateway, status)
}

func TestMapStorageErrorLocalGuards(t *testing.T) {
	status, _ := MapStorageError(errors.New("file too large (max 26214400 bytes)"))
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, status)

	status, _ = MapStorageError(errors.New("unsupported image format: text/plain / .txt"))
	assert.Equal(t, fiber.StatusUnsupportedMediaType, status)

	status, _ = MapStorageError(errors.New("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET"))
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestMapStorageErrorNil(t *testing.T) {
	status, msg := MapStorageError(nil)
	assert.Zero(t, status)
	assert.Empty(t, msg)
}

package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"ai-chat-workspace-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required,max=5"`
	Owner string `json:"owner" validate:"omitempty,uuid"`
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/app", func(ctx *fiber.Ctx) error { return Conflict("busy") })
	app.Get("/fiber", func(ctx *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "teapot") })
	app.Get("/plain", func(ctx *fiber.Ctx) error { return errors.New("db password leaked") })

	tests := []struct {
		path        string
		wantCode    int
		wantMessage string
	}{
		{"/app", 409, "busy"},
		{"/fiber", 418, "teapot"},
		{"/plain", 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			var body Response[any]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Name: "ok"}))

	err := ValidateRequest(sampleRequest{Name: "too-long", Owner: "nope"})
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "name must be at most 5 characters")
	assert.Contains(t, appErr.Message, "owner must be a valid id")

	err = ValidateRequest(sampleRequest{})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "name is required", appErr.Message)
}

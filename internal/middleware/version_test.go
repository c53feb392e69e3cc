package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/salesdb/internal/types"
)

func testApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*types.CustomError); ok {
				return c.Status(e.Code).JSON(fiber.Map{"message": e.Message, "type": e.Type})
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	app.Use(VersionMiddleware())
	app.Get("/probe", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"apiVersion": c.Locals("apiVersion"),
			"appVersion": c.Locals("appVersion"),
		})
	})
	return app
}

func TestVersionDefaults(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/probe", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
}

func TestVersionAlias(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("X-Api-Version", "1.0")
	req.Header.Set("X-App-Version", "build-412")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected 200 for aliased version, got %d", resp.StatusCode)
	}
}

func TestVersionUnsupported(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("X-Api-Version", "9.9.9")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected 400 for unsupported version, got %d", resp.StatusCode)
	}
}

package authController

import (
	"athletex/middleware"

	"github.com/gofiber/fiber/v2"
)

// IssueToken signs whatever object the client posted and hands back the
// bearer token. There is no credential check here: the token only proves
// which email the caller claimed, and every guarded route re-checks the
// stored role on its own.
func IssueToken(c *fiber.Ctx) error {
	payload, ok := c.Locals("validatedTokenPayload").(map[string]interface{})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	token, err := middleware.GenerateJWT(payload)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token issued successfully.", fiber.Map{
		"token": token,
	})
}

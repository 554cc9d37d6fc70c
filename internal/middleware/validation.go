package middleware

import (
	"quizdeck/internal/domain"
	"quizdeck/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Keys for validated values stored in fiber locals.
const (
	LocalQuizID = "validated_quiz_id"
	LocalLimit  = "validated_limit"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator    *validation.Validator
	defaultLimit int
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(defaultLimit int) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator:    validation.NewValidator(),
		defaultLimit: defaultLimit,
	}
}

// ValidateQuizID validates the :id path parameter
func (vm *ValidationMiddleware) ValidateQuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if errors := vm.validator.ValidateQuizID(id); len(errors) > 0 {
			return errors // handled by the ErrorHandler
		}

		c.Locals(LocalQuizID, id)
		return c.Next()
	}
}

// ValidateLeaderboardParams validates the limit query parameter, falling
// back to the configured default when it is absent
func (vm *ValidationMiddleware) ValidateLeaderboardParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := vm.defaultLimit
		if limitStr := c.Query("limit"); limitStr != "" {
			parsed, err := parseLimit(limitStr)
			if err != nil {
				return domain.ValidationErrors{
					domain.NewInvalidFormatError("limit", limitStr),
				}
			}
			limit = parsed
		}

		if errors := vm.validator.ValidateLeaderboardLimit(limit); len(errors) > 0 {
			return errors
		}

		c.Locals(LocalLimit, limit)
		return c.Next()
	}
}

// parseLimit parses the limit parameter, digits only
func parseLimit(limitStr string) (int, error) {
	limit := 0
	for _, char := range limitStr {
		if char < '0' || char > '9' {
			return 0, domain.NewInvalidInputError("limit must be a number")
		}
		limit = limit*10 + int(char-'0')
		if limit > 10000 {
			// Far past any acceptable value; stop before overflow
			return limit, nil
		}
	}
	return limit, nil
}

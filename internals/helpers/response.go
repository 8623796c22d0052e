package helper

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Khusus error validasi (validator.v10)
func ValidationError(c *fiber.Ctx, err error) error {
	fields := ValidationFields(err)
	if fields == nil {
		return JsonError(c, fiber.StatusBadRequest, "Datos inválidos")
	}
	return JsonErrorWithFields(c, fiber.StatusBadRequest, "Validación fallida", fields)
}

// ValidationFields flattens validator errors into {jsonField: [messages]}.
func ValidationFields(err error) map[string][]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], tagMessage(fe))
	}
	return out
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "no es un email válido"
	case "numeric", "number":
		return "debe ser numérico"
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	case "min":
		return fmt.Sprintf("longitud o valor mínimo %s", fe.Param())
	case "max":
		return fmt.Sprintf("longitud o valor máximo %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("debe tener el formato %s", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor a %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("debe ser posterior o igual a %s", fe.Param())
	default:
		return fe.Tag()
	}
}

package helper

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate

	strictJSON = sonic.Config{
		DisallowUnknownFields: true,
		ValidateString:        true,
	}.Froze()
)

// Validator returns the shared validator. Field names in errors use the json tag.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		validate = v
	})
	return validate
}

// ValidateStruct runs the struct tags and wraps failures as a ValidationError.
func ValidateStruct(dst any) error {
	if err := Validator().Struct(dst); err != nil {
		if fields := ValidationFields(err); fields != nil {
			return ErrValidationFields("Validación fallida", fields)
		}
		return ErrValidation("Datos inválidos").WithCause(err)
	}
	return nil
}

// BindStrict decodes JSON, multipart or urlencoded bodies into dst rejecting
// keys the DTO does not declare, then validates it.
func BindStrict(c *fiber.Ctx, dst any) error {
	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	switch {
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm), strings.HasPrefix(ct, fiber.MIMEApplicationForm):
		if unknown := unknownFormKeys(c, dst); len(unknown) > 0 {
			return ErrValidation("Campos no permitidos: " + strings.Join(unknown, ", "))
		}
		if err := c.BodyParser(dst); err != nil {
			return ErrValidation("Payload inválido").WithCause(err)
		}
	default:
		body := c.Body()
		if len(strings.TrimSpace(string(body))) == 0 {
			body = []byte("{}")
		}
		if err := strictJSON.Unmarshal(body, dst); err != nil {
			return ErrValidation("Payload inválido").WithCause(err)
		}
	}
	if n, ok := dst.(normalizer); ok {
		n.Normalize()
	}
	return ValidateStruct(dst)
}

// DTOs that trim input or turn empty optional strings into nil implement it.
type normalizer interface{ Normalize() }

func unknownFormKeys(c *fiber.Ctx, dst any) []string {
	allowed := formTagSet(dst)
	seen := map[string]struct{}{}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for k := range form.Value {
			seen[k] = struct{}{}
		}
	} else {
		c.Request().PostArgs().VisitAll(func(k, _ []byte) {
			seen[string(k)] = struct{}{}
		})
	}

	var out []string
	for k := range seen {
		if _, ok := allowed[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func formTagSet(dst any) map[string]struct{} {
	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]struct{}{}
	if t.Kind() != reflect.Struct {
		return out
	}
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("form"), ",", 2)[0]
		if name != "" && name != "-" {
			out[name] = struct{}{}
		}
	}
	return out
}

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, ErrValidation("ID inválido: " + name)
	}
	return uint(n), nil
}

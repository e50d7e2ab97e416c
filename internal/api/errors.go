package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/katakuxiko/resumeqa/internal/model"
)

// parseIssue describes a body that could not be decoded into the request.
func parseIssue(err error) model.ValidationIssue {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		want := typeErr.Type
		if want.Kind() == reflect.Pointer {
			want = want.Elem()
		}
		return model.ValidationIssue{
			Type: want.Kind().String() + "_type",
			Loc:  append([]string{"body"}, strings.Split(typeErr.Field, ".")...),
			Msg:  "Input should be a valid " + want.Kind().String(),
		}
	}
	return model.ValidationIssue{
		Type: "json_invalid",
		Loc:  []string{"body"},
		Msg:  "JSON decode error",
	}
}

func validationIssues(err error) []model.ValidationIssue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []model.ValidationIssue{{Type: "value_error", Loc: []string{"body"}, Msg: err.Error()}}
	}

	issues := make([]model.ValidationIssue, 0, len(verrs))
	for _, fe := range verrs {
		issue := model.ValidationIssue{
			Type: "value_error",
			Loc:  []string{"body", fe.Field()},
			Msg:  "Value error, failed on " + fe.Tag(),
		}
		if fe.Tag() == "required" {
			issue.Type = "missing"
			issue.Msg = "Field required"
		}
		issues = append(issues, issue)
	}
	return issues
}

// jsonFieldName makes validator report fields by their JSON name.
func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

// errorHandler renders framework errors (404, 405, recovered panics) as
// {"detail": "..."}.
func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Internal Server Error"

		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			code = ferr.Code
			msg = ferr.Message
		} else {
			log.Error("unhandled error", "path", c.Path(), "request_id", requestID(c), "error", err)
		}

		return c.Status(code).JSON(model.ErrorResponse{Detail: msg})
	}
}

package utils

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// allowedImageExt is the whitelist for uploaded thumbnails. Anything else is
// rejected under the imgType key.
var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]; name != "" && name != "-" {
			return name
		}
		if name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]; name != "" && name != "-" {
			return name
		}
		return fld.Name
	})
}

// CheckRequest runs the unified validation path for recipe requests: struct
// rules on req plus the image extension whitelist when a new thumbnail is
// attached. Returns nil when the request is clean, otherwise a flat
// field -> message map holding one message per field (first violation wins).
func CheckRequest(req interface{}, thumbnail *multipart.FileHeader) map[string]string {
	fields := map[string]string{}

	if err := Validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, e := range ve {
				if _, ok := fields[e.Field()]; !ok {
					fields[e.Field()] = validationMessage(e)
				}
			}
		}
	}

	if thumbnail != nil {
		ext := strings.ToLower(filepath.Ext(thumbnail.Filename))
		if !allowedImageExt[ext] {
			fields["imgType"] = "thumbnail must be a jpg, jpeg or png image"
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "required_without":
		return "either title or recipe is required"
	case "number":
		return e.Field() + " must be a number"
	default:
		return e.Field() + " is invalid"
	}
}

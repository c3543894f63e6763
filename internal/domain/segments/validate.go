package segments

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/forPelevin/segview/internal/types"
)

const ValidationErrorPrefix = "validation error: "

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their wire names.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// IsValidationError reports whether err came from Validate.
func IsValidationError(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), ValidationErrorPrefix)
}

// Validate checks what callers expect of a segment: a video id and
// 0 <= startTime <= endTime. The codec never calls it.
func Validate(segs []types.Segment) error {
	v := instance()
	for i := range segs {
		err := v.Struct(segs[i])
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf(ValidationErrorPrefix+"segment %d: %s failed %q: %w", i, fe.Field(), fe.Tag(), err)
		}
		return fmt.Errorf(ValidationErrorPrefix+"segment %d: %w", i, err)
	}
	return nil
}

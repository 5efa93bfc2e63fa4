// Package bind decodes and validates query-string inputs for handlers
package bind

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"

	perr "routedata/internal/platform/errors"

	"github.com/go-playground/form/v4"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidatorSvc holds a singleton validator, translator, and form decoder
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
	Decoder    *form.Decoder
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Init initializes the singleton with english translations and form tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer form tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("form")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		dec := form.NewDecoder()
		dec.SetTagName("form")
		dec.SetMode(form.ModeExplicit)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans, Decoder: dec}
	})
	return vSvc
}

// Get returns the singleton, initializing on first use
func Get() *ValidatorSvc {
	if vSvc == nil {
		return Init()
	}
	return vSvc
}

// Query decodes r's query string into T and validates it
// Unknown parameters are ignored; malformed typed values and validation
// failures map to a 400-class project error naming the offending field
func Query[T any](r *http.Request) (T, error) {
	var zero T
	svc := Get()

	var in T
	if err := svc.Decoder.Decode(&in, r.URL.Query()); err != nil {
		return zero, decodeError(err, r.URL.Query())
	}

	if err := validate(svc, in); err != nil {
		return zero, err
	}
	return in, nil
}

// decodeError turns decode failures into client errors naming the
// offending parameter and its literal value
func decodeError(err error, q url.Values) error {
	var derrs form.DecodeErrors
	if !stderrs.As(err, &derrs) {
		return perr.Wrap(err, perr.ErrorCodeValidation, "cannot parse query parameters")
	}
	var out *perr.Error
	for name := range derrs {
		msg := fmt.Sprintf("cannot parse query parameter %s: %s", name, paramValue(q, name))
		if out == nil {
			e, _ := perr.As(perr.Validationf("%s", msg))
			out = e
			continue
		}
		out = out.Append(msg)
	}
	if out == nil {
		return perr.Wrap(err, perr.ErrorCodeValidation, "cannot parse query parameters")
	}
	return out
}

// paramValue looks the parameter up by its decoded name, tolerating a case
// difference between the struct name and the wire name
func paramValue(q url.Values, name string) string {
	if v := q.Get(name); v != "" {
		return v
	}
	for k, vs := range q {
		if strings.EqualFold(k, name) && len(vs) > 0 {
			return vs[0]
		}
	}
	return ""
}

// validate runs struct validation and accumulates translated messages
func validate(svc *ValidatorSvc, in any) error {
	err := svc.Validator.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return perr.Wrap(err, perr.ErrorCodeValidation, "query validation failed")
	}
	var out *perr.Error
	for _, fe := range verrs {
		msg := fe.Translate(svc.Translator)
		if out == nil {
			e, _ := perr.As(perr.Validationf("%s", msg))
			out = e
			continue
		}
		out = out.Append(msg)
	}
	return out
}

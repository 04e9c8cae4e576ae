// Package handler exposes the HTTP endpoints of the complaint center.
package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kart-io/complaint-center/internal/complaint-center/biz"
	"github.com/kart-io/complaint-center/internal/model"
	"github.com/kart-io/complaint-center/pkg/auth"
	apperrors "github.com/kart-io/complaint-center/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// role accepts only the roles the platform knows about.
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return model.Role(fl.Field().String()).Valid()
	})

	return v
}

// bindAndValidate binds the JSON body into req and runs struct validation.
func bindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return err
	}
	return validate.Struct(req)
}

// failedOnTag reports whether a validation error includes a failure on the
// given rule tag.
func failedOnTag(err error, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}

// identityFromContext extracts the verified caller identity injected by the
// auth middleware.
func identityFromContext(c *gin.Context) (biz.Identity, error) {
	claims := auth.ClaimsFromContext(c.Request.Context())
	if claims == nil {
		return biz.Identity{}, apperrors.ErrUnauthorized
	}

	return biz.Identity{
		UserID: claims.Subject,
		Name:   claims.GetExtraString(auth.ClaimName),
		Role:   model.Role(claims.Role()),
	}, nil
}

package inits

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Validator 挂载到 echo 上，handler 里通过 c.Validate 校验请求体
func Validator() echo.Validator {
	return &requestValidator{validate: validator.New()}
}

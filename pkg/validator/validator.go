// Package validator valida DTOs de entrada con go-playground/validator a
// partir de los tags `validate` declarados en los structs.
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct valida un struct por sus tags `validate`. Retorna un error legible
// con todos los campos fallidos, o nil.
func Struct(data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: falla la regla %q", fe.StructNamespace(), fe.Tag()))
	}
	return fmt.Errorf("validación: %s", strings.Join(parts, "; "))
}

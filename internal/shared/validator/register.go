package validator

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("gin binding engine is not go-playground/validator")
	}
	return v, nil
}

// RegisterAll registers the shared binding tags. Safe to call more than once.
func RegisterAll() error {
	var err error
	registerOnce.Do(func() {
		err = register()
	})
	return err
}

func register() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("get validator: %w", err)
	}

	if err := v.RegisterValidation("rut", ValidateRut); err != nil {
		return fmt.Errorf("register rut validator: %w", err)
	}

	slog.Info("validators registered", "validators", "rut")
	return nil
}

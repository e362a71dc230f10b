package utils

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	Validate     *validator.Validate
	validateOnce sync.Once
)

// InitValidator builds the shared validator once; later calls are no-ops and safe to race.
func InitValidator() {
	validateOnce.Do(func() {
		Validate = validator.New()
	})
}

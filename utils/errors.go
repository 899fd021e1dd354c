package utils

import (
	"errors"
	"fmt"
	"log"
)

// WrapServiceError passes err through when it matches one of the expected errors and
// otherwise replaces it with a generic "failed to <action>" error. The original error
// is logged, not returned.
func WrapServiceError(err error, action string, expected ...error) error {
	if err == nil {
		return nil
	}
	for _, e := range expected {
		if errors.Is(err, e) {
			return err
		}
	}
	log.Printf("❌ failed to %s: %v", action, err)
	return fmt.Errorf("failed to %s", action)
}

package validator

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidUUID validates the canonical 36 character UUID form.
// The nil UUID is rejected.
func ValidUUID(fieldName string) Rule[string] {
	return Rule[string]{
		Name:    "uuid",
		Message: fmt.Sprintf("%s should be a valid UUID", displayName(fieldName)),
		Check: func(value string) bool {
			// uuid.Parse also accepts urn: and braced forms.
			if len(value) != 36 {
				return false
			}
			id, err := uuid.Parse(value)
			return err == nil && id != uuid.Nil
		},
	}
}

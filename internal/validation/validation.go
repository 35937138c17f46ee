package validation

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/metaphorce/taskflow/internal/models"
)

// RegisterCustomValidators installs the enum validators referenced by
// binding tags (role, priority, taskstatus) on gin's validator engine.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	validators := map[string]validator.Func{
		"role": func(fl validator.FieldLevel) bool {
			return IsValidRole(models.Role(fl.Field().String()))
		},
		"priority": func(fl validator.FieldLevel) bool {
			return IsValidPriority(models.Priority(fl.Field().String()))
		},
		"taskstatus": func(fl validator.FieldLevel) bool {
			return IsValidTaskStatus(models.TaskStatus(fl.Field().String()))
		},
	}

	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q validator: %w", tag, err)
		}
	}

	return nil
}

// IsValidRole reports whether the role belongs to the closed role set
func IsValidRole(role models.Role) bool {
	switch role {
	case models.RoleLead, models.RoleMember:
		return true
	}
	return false
}

// IsValidPriority reports whether the priority belongs to the closed priority set
func IsValidPriority(priority models.Priority) bool {
	switch priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}

// IsValidTaskStatus reports whether the status belongs to the closed status set
func IsValidTaskStatus(status models.TaskStatus) bool {
	switch status {
	case models.TaskStatusAssigned, models.TaskStatusInProgress, models.TaskStatusDone:
		return true
	}
	return false
}

package validation

import (
	"strings"
	"unicode/utf8"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

func ValidateCreateTask(req dto.CreateTaskRequest) []domain.FieldError {
	return validateTaskFields(req.Title, req.Description)
}

func ValidateUpdateTask(req dto.UpdateTaskRequest) []domain.FieldError {
	return validateTaskFields(req.Title, req.Description)
}

func validateTaskFields(title string, description *string) []domain.FieldError {
	var fields []domain.FieldError

	title = strings.TrimSpace(title)
	switch {
	case title == "":
		fields = append(fields, domain.FieldError{Field: "title", Rule: domain.RuleRequired})
	case utf8.RuneCountInString(title) > domain.TitleMaxLength:
		fields = append(fields, domain.FieldError{Field: "title", Rule: domain.RuleMaxLength, Limit: domain.TitleMaxLength})
	}

	if description != nil && utf8.RuneCountInString(*description) > domain.DescriptionMaxLength {
		fields = append(fields, domain.FieldError{Field: "description", Rule: domain.RuleMaxLength, Limit: domain.DescriptionMaxLength})
	}

	return fields
}

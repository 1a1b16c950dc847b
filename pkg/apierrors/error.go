package apierrors

import (
	"context"
	"errors"
	"net/http"

	"tasktracker/internal/core/domain"
	"tasktracker/pkg/apiresponse"
	"tasktracker/pkg/translator"
)

// Translation is the transport view of a failure: status, message template and
// the data needed to render it.
type Translation struct {
	Kind         domain.ErrorKind
	Status       int
	MessageID    string
	TemplateData map[string]any
	Fields       []domain.FieldError
}

type entry struct {
	status    int
	messageID string
}

var translationTable = map[domain.ErrorKind]entry{
	domain.KindNotFound:          {http.StatusNotFound, MsgTaskNotFound},
	domain.KindValidation:        {http.StatusBadRequest, MsgInvalidInput},
	domain.KindAlreadyCompleted:  {http.StatusConflict, MsgTaskAlreadyCompleted},
	domain.KindMalformedArgument: {http.StatusBadRequest, MsgInvalidArguments},
	domain.KindUnauthorized:      {http.StatusUnauthorized, MsgUnauthorized},
	domain.KindInvalidOperation:  {http.StatusBadRequest, MsgInvalidOperation},
	domain.KindTimeout:           {http.StatusRequestTimeout, MsgRequestTimeout},
	domain.KindRouteNotFound:     {http.StatusNotFound, MsgRouteNotFound},
	domain.KindMethodNotAllowed:  {http.StatusMethodNotAllowed, MsgMethodNotAllowed},
	domain.KindInternal:          {http.StatusInternalServerError, MsgInternalError},
}

var fieldMessages = map[string]string{
	domain.RuleRequired:  MsgFieldRequired,
	domain.RuleMaxLength: MsgFieldMaxLength,
	domain.RuleBoolean:   MsgFieldBoolean,
	domain.RuleDatetime:  MsgFieldDatetime,
	domain.RuleInteger:   MsgFieldInteger,
}

// Translate maps err to its transport form. Internal failures never expose
// their detail.
func Translate(err error) Translation {
	kind := domain.KindOf(err)
	e, ok := translationTable[kind]
	if !ok {
		kind = domain.KindInternal
		e = translationTable[kind]
	}

	tr := Translation{Kind: kind, Status: e.status, MessageID: e.messageID}

	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		if kind == domain.KindTimeout {
			tr.TemplateData = map[string]any{"Detail": context.DeadlineExceeded.Error()}
		}
		return tr
	}

	switch kind {
	case domain.KindNotFound, domain.KindAlreadyCompleted:
		tr.TemplateData = map[string]any{"ID": domainErr.TaskID}
	case domain.KindValidation:
		tr.Fields = domainErr.Fields
	case domain.KindMalformedArgument, domain.KindUnauthorized, domain.KindInvalidOperation, domain.KindTimeout,
		domain.KindRouteNotFound, domain.KindMethodNotAllowed:
		tr.TemplateData = map[string]any{"Detail": domainErr.Detail}
	}
	return tr
}

// CreateError renders err as a failure envelope in lang.
func CreateError(err error, lang string) apiresponse.Response {
	tr := Translate(err)
	return apiresponse.Failure(
		tr.Status,
		GetTransMsg(tr.MessageID, lang, tr.TemplateData),
		localizeFields(tr.Fields, lang)...,
	)
}

// GetTransMsg retrieves the translated message, falling back to the key.
func GetTransMsg(msgKey string, lang string, data map[string]any) string {
	return translator.Localize(lang, msgKey, data)
}

func localizeFields(fields []domain.FieldError, lang string) []apiresponse.FieldErrorItem {
	if len(fields) == 0 {
		return nil
	}

	items := make([]apiresponse.FieldErrorItem, 0, len(fields))
	for _, field := range fields {
		msgKey, ok := fieldMessages[field.Rule]
		message := field.String()
		if ok {
			message = GetTransMsg(msgKey, lang, map[string]any{"Field": field.Field, "Limit": field.Limit})
		}
		items = append(items, apiresponse.FieldErrorItem{Field: field.Field, Message: message})
	}
	return items
}

package service

import (
	"strings"
	"unicode/utf8"

	"sprintsync.app/retro/common/sanitize"
	"sprintsync.app/retro/internal/model"
)

const (
	maxNameLen    = 200
	maxMessageLen = 5000
)

// requireText sanitizes v and fails when nothing is left or it is too long.
func requireText(field, v string, maxLen int) (string, error) {
	clean := sanitize.Text(v)
	if clean == "" {
		return "", newValidationError(field, "is required")
	}
	if utf8.RuneCountInString(clean) > maxLen {
		return "", newValidationError(field, "is too long")
	}
	return clean, nil
}

func requireAvatar(field, v string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "", newValidationError(field, "is required")
	}
	clean := sanitize.URL(v)
	if clean == "" {
		return "", newValidationError(field, "must be an http(s) or site-relative URL")
	}
	return clean, nil
}

func requireCategory(field string, c model.Category) error {
	if !c.Valid() {
		return newValidationError(field, `must be one of "What Went Well", "What Didn't Go Well", "Suggestions"`)
	}
	return nil
}

func requireID(field string, v int64) error {
	if v <= 0 {
		return newValidationError(field, "is required")
	}
	return nil
}

func requireUserID(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", newValidationError(field, "is required")
	}
	if utf8.RuneCountInString(v) > maxNameLen {
		return "", newValidationError(field, "is too long")
	}
	return v, nil
}

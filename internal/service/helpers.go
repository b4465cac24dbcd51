package service

import (
	"errors"
	"time"
)

// ErrNotFound is returned by every service when the requested resource does
// not exist; handlers translate it to 404.
var ErrNotFound = errors.New("recurso no encontrado")

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD string already validated at the handler
// boundary.
func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func fmtDate(t time.Time) string { return t.Format(dateLayout) }

func fmtDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := fmtDate(*t)
	return &s
}

func fmtTime(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func fmtTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := fmtTime(*t)
	return &s
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := parseDate(*s)
	return &t
}

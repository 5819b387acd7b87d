package salesapi

import "fmt"

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	Path       string
	Body       string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("sales service %s: status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("sales service %s: status %d - %s", e.Path, e.StatusCode, e.Body)
}

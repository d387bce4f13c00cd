package llm

import "fmt"

// BadRequestError is returned when the API rejects a request but still
// carries a partially generated payload, e.g. Groq's json_validate_failed
// responses. Callers can attempt structural repair of FailedGeneration.
type BadRequestError struct {
	Message          string
	Code             string
	FailedGeneration string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("llm bad request (%s): %s", e.Code, e.Message)
}

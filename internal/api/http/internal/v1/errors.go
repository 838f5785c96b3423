package v1

const (
	NotFoundMessage = "Not found"
	ConflictMessage = "Conflict"
	InternalMessage = "Internal server error"

	ValidationErrorMessage = "Validation error"
)

type ErrorStruct struct {
	Error string `json:"error"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

// DeletedStruct is the empty object answered on successful deletes.
type DeletedStruct struct{} // @name DeletedStruct

package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldRunID      = "run_id"
	FieldMode       = "mode"
	FieldSourceFile = "source_file"
	FieldOutputFile = "output_file"
	FieldRow        = "row"
	FieldRawValue   = "raw_value"
	FieldReason     = "reason"
	FieldDuration   = "duration"
	FieldErrorCode  = "error_code"
	FieldErrorStack = "error_stack"
)

// ABOUTME: Error types returned by the decoders
// ABOUTME: Reports malformed input and invalid format parameters
package decode

import "fmt"

// DecodeError reports base64 input that could not be decoded
type DecodeError struct {
	// Offset is the byte offset of the first illegal input, or -1 if unknown
	Offset     int64
	Underlying error
}

func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("malformed base64 input at offset %d", e.Offset)
	}
	if e.Underlying != nil {
		return fmt.Sprintf("malformed base64 input: %v", e.Underlying)
	}
	return "malformed base64 input"
}

func (e *DecodeError) Unwrap() error {
	return e.Underlying
}

// InvalidParameterError reports a format parameter the PCM decoder cannot use.
// It indicates a caller defect rather than bad audio data.
type InvalidParameterError struct {
	Param  string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

// ValidateFormat checks a PCM sample rate and channel count.
// It is the rule applied by PCM16 and NewPCM.
func ValidateFormat(sampleRate, channels int) error {
	if sampleRate <= 0 {
		return &InvalidParameterError{Param: "sample rate", Value: sampleRate, Reason: "must be positive"}
	}
	if channels < 1 {
		return &InvalidParameterError{Param: "channel count", Value: channels, Reason: "must be at least 1"}
	}
	return nil
}

package protocol

import "regexp"

// isoDateTimePrefix matches the leading date-time portion of an ISO-8601
// string. Classification is a plain prefix check, not a full parse: a string
// that starts like a timestamp is treated as one.
var isoDateTimePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}`)

// InferDataType classifies a property value by inspection. The inference is
// purely structural and deterministic for identical inputs.
func InferDataType(v any) DataType {
	switch t := v.(type) {
	case bool:
		return DataTypeBoolean
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return DataTypeNumber
	case string:
		if isoDateTimePrefix.MatchString(t) {
			return DataTypeTime
		}
		return DataTypeString
	default:
		return DataTypeString
	}
}

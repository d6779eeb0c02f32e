// Package errors provides the typed errors returned while building LSP messages.
package errors

// Standard JSON-RPC error codes as defined in RFC 7309
const (
	ParseError     = -32700 // Invalid JSON was received by the server
	InvalidRequest = -32600 // The JSON sent is not a valid Request object
	MethodNotFound = -32601 // The method does not exist / is not available
	InvalidParams  = -32602 // Invalid method parameter(s)
	InternalError  = -32603 // Internal JSON-RPC error
)

// Client-side encoding error codes (range: -33020 to -33069)
const (
	// Validation errors
	MissingParameter     = -33023 // Required parameter missing
	InvalidParameterType = -33024 // Parameter has invalid type

	// Configuration errors
	ConfigurationError  = -33060 // Configuration error
	CyclicConfiguration = -33063 // Configuration value references itself
)

// Error code categories for classification and handling
const (
	CategoryJSONRPC    = "jsonrpc"
	CategoryValidation = "validation"
	CategoryConfig     = "config"
	CategoryUnknown    = "unknown"
)

// GetErrorCodeCategory returns the category for a given error code
func GetErrorCodeCategory(code int) string {
	switch {
	case code >= -32700 && code <= -32600:
		return CategoryJSONRPC
	case code >= -33029 && code <= -33020:
		return CategoryValidation
	case code >= -33069 && code <= -33060:
		return CategoryConfig
	default:
		return CategoryUnknown
	}
}

var errorCodeMessages = map[int]string{
	ParseError:           "Parse error",
	InvalidRequest:       "Invalid Request",
	MethodNotFound:       "Method not found",
	InvalidParams:        "Invalid params",
	InternalError:        "Internal error",
	MissingParameter:     "Missing parameter",
	InvalidParameterType: "Invalid parameter type",
	ConfigurationError:   "Configuration error",
	CyclicConfiguration:  "Cyclic configuration",
}

// GetErrorCodeMessage returns the standard message for a given error code
func GetErrorCodeMessage(code int) string {
	if msg, ok := errorCodeMessages[code]; ok {
		return msg
	}
	return "Unknown error"
}

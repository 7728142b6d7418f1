// Package exit provides standard exit codes for soar commands.
package exit

// Standard exit codes used by soar commands.
const (
	// Success indicates successful execution.
	Success = 0

	// GeneralError indicates a general error occurred.
	GeneralError = 1

	// ArgumentError indicates invalid flags, arguments or payloads.
	ArgumentError = 2

	// AuthError indicates the panel URL or API key is not configured.
	AuthError = 3

	// NotFound indicates the requested resource does not exist on the panel.
	NotFound = 4

	// ClientError indicates the panel rejected the request (4xx).
	ClientError = 5

	// ServerError indicates the panel failed or answered unexpectedly.
	ServerError = 6

	// ConnectionError indicates the panel could not be reached.
	ConnectionError = 7
)

// CodeDescriptions maps exit codes to their descriptions.
var CodeDescriptions = map[int]string{
	Success:         "Success",
	GeneralError:    "General error",
	ArgumentError:   "Argument error",
	AuthError:       "Missing authentication",
	NotFound:        "Resource not found",
	ClientError:     "Request rejected by the panel",
	ServerError:     "Panel API error",
	ConnectionError: "Connection error",
}

// GetDescription returns the description for an exit code.
func GetDescription(code int) string {
	if desc, ok := CodeDescriptions[code]; ok {
		return desc
	}
	return "Unknown error"
}

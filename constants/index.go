package constants

const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
	ROLE_MEMBER  = "MEMBER"
)

const (
	ERROR_INPUT                = "Invalid request input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read validated input"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	NOT_ADMIN                  = "You do not have permission to perform this action"
	NOT_MEMBER                 = "Member authentication required"
	NOT_FOUND                  = "Record not found"
)

// Quota types on a product item.
const (
	QUOTA_INDIVIDUAL = "INDIVIDUAL"
	QUOTA_SHARED     = "SHARED"
	QUOTA_FREE       = "FREE"
)

// Template modes.
const (
	TEMPLATE_AUTOMATIC = "AUTOMATIC"
	TEMPLATE_MANUAL    = "MANUAL"
)

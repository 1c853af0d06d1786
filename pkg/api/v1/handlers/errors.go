// Package handlers provides HTTP request handling
package handlers

// Common error messages
const (
	ErrMsgInvalidParams    = "Invalid parameters"
	ErrMsgInvalidReqFormat = "Invalid request format"
)

// Person error messages
const (
	ErrMsgInvalidPersonID      = "Invalid person id"
	ErrMsgPersonIDRequired     = "Person id is required"
	ErrMsgPersonEmailRequired  = "At least one email address is required"
	ErrMsgInvalidPersonEmail   = "Invalid person email format"
	ErrMsgPersonNotFound       = "Person not found with provided id"
	ErrMsgGetPeopleFailed      = "Failed to get people"
	ErrMsgGetPersonFailed      = "Failed to get person"
	ErrMsgCreatePersonFailed   = "Failed to create person"
	ErrMsgUpdatePersonFailed   = "Failed to update person"
	ErrMsgDeletePersonFailed   = "Failed to delete person"
	ErrMsgUnknownLicense       = "Unknown license id"
	ErrMsgMeAccountNotSeeded   = "Acting account is not configured"
	ErrMsgEmailAlreadyInUse    = "Email address already in use"
	ErrMsgEmailsImmutable      = "Email addresses cannot be changed"
	ErrMsgNegativePagination   = "Pagination values must not be negative"
	ErrMsgLicenseNotFound      = "License not found with provided id"
	ErrMsgGetLicensesFailed    = "Failed to get licenses"
	ErrMsgInvalidLicenseParams = "Invalid license parameters"
)

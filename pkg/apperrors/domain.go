package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные ошибки предметной области доски вакансий.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Auth ---

var ErrAuthenticationRequired = New(
	CodeUnauthorized,
	"auth",
	"Authentication credentials were not provided",
	http.StatusUnauthorized,
)

var ErrPermissionDenied = New(
	CodeForbidden,
	"auth",
	"You do not have permission to perform this action",
	http.StatusForbidden,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrAccountNotConfirmed = New(
	CodeForbidden,
	"auth",
	"Account is not confirmed",
	http.StatusForbidden,
)

// --- Users ---

var ErrUserNotFound = New(CodeNotFound, "user", "User not found", http.StatusNotFound)

var ErrUserAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"A user with that username or email already exists",
	http.StatusConflict,
)

var ErrConfirmationTokenNotFound = New(CodeNotFound, "user", "Confirmation token not found", http.StatusNotFound)

var ErrConfirmationTokenExpired = New(CodeTokenExpired, "user", "Confirmation token has expired", http.StatusNotFound)

// --- Profiles ---

var ErrProfileNotFound = New(CodeNotFound, "profile", "Profile not found", http.StatusNotFound)

var ErrEducationNotFound = New(CodeNotFound, "profile", "Education record not found", http.StatusNotFound)

var ErrExperienceNotFound = New(CodeNotFound, "profile", "Experience record not found", http.StatusNotFound)

// --- Companies ---

var ErrCompanyNotFound = New(CodeNotFound, "company", "Company not found", http.StatusNotFound)

var ErrCompanyRequired = New(
	CodeInvalidOperation,
	"company",
	"Create a company profile before publishing posts",
	http.StatusBadRequest,
)

// --- Posts, applies, saved posts ---

var ErrPostNotFound = New(CodeNotFound, "post", "Post not found", http.StatusNotFound)

var ErrApplyNotFound = New(CodeNotFound, "apply", "Apply not found", http.StatusNotFound)

var ErrAlreadyApplied = New(CodeConflict, "apply", "You have already applied to this post", http.StatusConflict)

var ErrSavedPostNotFound = New(CodeNotFound, "saved_post", "Saved post not found", http.StatusNotFound)

var ErrAlreadySaved = New(CodeConflict, "saved_post", "Post is already saved", http.StatusConflict)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodeValidationFailed,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// --- Transport ---

var ErrTooManyRequests = New(
	CodeTooManyRequests,
	"request",
	"Too many requests, slow down",
	http.StatusTooManyRequests,
)

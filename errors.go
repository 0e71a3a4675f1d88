package main

import "errors"

// Closed failure taxonomy. Every handler maps a failure to exactly one of
// these before anything reaches the user.
var (
	errInvalidFormat   = errors.New("invalid time format")
	errPastTime        = errors.New("fire time already passed")
	errInvalidArgument = errors.New("invalid argument")
	errRateLimited     = errors.New("text provider rate limited")
	errProviderFailure = errors.New("provider failure")
	errEmptyPrompt     = errors.New("empty prompt")
)

type UserError struct {
	Err     error
	UserMsg string
}

func (e *UserError) Error() string {
	return e.Err.Error()
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func NewUserError(internalErr error, userMsg string) *UserError {
	return &UserError{
		Err:     internalErr,
		UserMsg: userMsg,
	}
}

// userMessage converts any error into a fixed user-facing reply. Internal
// error text never leaks into chat; unknown failures get the generic line.
func userMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMsg
	}
	switch {
	case errors.Is(err, errInvalidFormat):
		return "זה לא נראה כמו שעה. הפורמט הוא HH:MM, למשל 16:30."
	case errors.Is(err, errPastTime):
		return "השעה הזאת כבר עברה היום. אני לא מכונת זמן."
	case errors.Is(err, errInvalidArgument):
		return "זה לא מספר. שלח /done עם מספר משימה מהרשימה."
	case errors.Is(err, errRateLimited):
		return "חפרת לי! המכסה של גוגל נגמרה. חכה דקה ונסה שוב."
	case errors.Is(err, errEmptyPrompt):
		return "מה לצייר? אין לי כוח לנחש."
	case errors.Is(err, errProviderFailure):
		return "משהו נדפק בציור."
	default:
		return "משהו נשבר לי בפנים. נסה שוב עוד רגע."
	}
}

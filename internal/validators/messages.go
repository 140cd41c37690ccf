package validators

// Messages returned to API callers, one pair per required field: the first
// when the field is absent, the second when it is present but empty or
// malformed.
const (
	MsgFirstNameRequired = "A first name is required"
	MsgFirstNameEmpty    = "Please provide a first name"

	MsgLastNameRequired = "A last name is required"
	MsgLastNameEmpty    = "Please provide a last name"

	MsgEmailRequired = "An email is required"
	MsgEmailInvalid  = "Please provide a valid email address"
	MsgEmailTaken    = "That email already exists"

	MsgPasswordRequired = "A password is required"
	MsgPasswordEmpty    = "Please provide a password"
	MsgPasswordTooLong  = "Please provide a password of at most 72 bytes"

	MsgTitleRequired = "A title is required"
	MsgTitleEmpty    = "Please provide a course title"

	MsgDescriptionRequired = "A course description is required"
	MsgDescriptionEmpty    = "Please provide a course description"
)

// RequiredMessage returns the "absent" message for a persisted column, or ""
// when the column has no such message.
func RequiredMessage(column string) string {
	switch column {
	case "first_name":
		return MsgFirstNameRequired
	case "last_name":
		return MsgLastNameRequired
	case "email_address":
		return MsgEmailRequired
	case "password":
		return MsgPasswordRequired
	case "title":
		return MsgTitleRequired
	case "description":
		return MsgDescriptionRequired
	}
	return ""
}

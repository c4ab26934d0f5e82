package auth

// Field names an input of the form. The values match the DOM input names.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// Fields holds the raw text of every input. Name and ConfirmPassword only
// mean something in sign-up mode.
type Fields struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Get returns the value of f, or "" for an unknown field.
func (fs Fields) Get(f Field) string {
	switch f {
	case FieldName:
		return fs.Name
	case FieldEmail:
		return fs.Email
	case FieldPassword:
		return fs.Password
	case FieldConfirmPassword:
		return fs.ConfirmPassword
	}
	return ""
}

func (fs *Fields) set(f Field, value string) bool {
	switch f {
	case FieldName:
		fs.Name = value
	case FieldEmail:
		fs.Email = value
	case FieldPassword:
		fs.Password = value
	case FieldConfirmPassword:
		fs.ConfirmPassword = value
	default:
		return false
	}
	return true
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Payload builds the request body for mode. ConfirmPassword is never sent.
func (fs Fields) Payload(mode Mode) interface{} {
	if mode == ModeSignUp {
		return RegisterRequest{Name: fs.Name, Email: fs.Email, Password: fs.Password}
	}
	return LoginRequest{Email: fs.Email, Password: fs.Password}
}

// Form is the local state of one open auth modal.
type Form struct {
	Mode    Mode
	Fields  Fields
	Loading bool
	// Err is the message of the last failed attempt, "" when there is none.
	Err string
}

// NewForm returns an empty form in login mode.
func NewForm() *Form {
	return &Form{Mode: ModeLogin}
}

// Change updates exactly one field and clears the error. Edits are refused
// while a submission is outstanding.
func (f *Form) Change(field Field, value string) bool {
	if f.Loading {
		return false
	}
	if !f.Fields.set(field, value) {
		return false
	}
	f.Err = ""
	return true
}

// SetMode switches between login and sign-up. Typed values are kept.
func (f *Form) SetMode(mode Mode) bool {
	if f.Loading {
		return false
	}
	f.Mode = mode
	return true
}

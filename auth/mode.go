package auth

// Mode is the authentication flow the form currently represents.
type Mode int

const (
	ModeLogin Mode = iota
	ModeSignUp
)

const (
	loginEndpoint    = "/api/auth/login"
	registerEndpoint = "/api/auth/register"
)

func (m Mode) String() string {
	if m == ModeSignUp {
		return "signup"
	}
	return "login"
}

// Endpoint returns the API path a submission in this mode is posted to.
func (m Mode) Endpoint() string {
	if m == ModeSignUp {
		return registerEndpoint
	}
	return loginEndpoint
}

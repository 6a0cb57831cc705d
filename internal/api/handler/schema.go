package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// violationsResponse carries the full batch of validation failures so the
// caller can display every problem at once.
type violationsResponse struct {
	Errors []violationItem `json:"errors"`
}

type violationItem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// --- Request types ---

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email"    validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Password        string `json:"password"         validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// --- Response types ---
// Separate from domain types so the JSON contract is not coupled to internal
// service changes.

type userResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

type registerResponse struct {
	User     userResponse `json:"user"`
	Message  string       `json:"message"`
	Redirect string       `json:"redirect"`
}

type loginResponse struct {
	Token    string       `json:"token"`
	User     userResponse `json:"user"`
	Redirect string       `json:"redirect"`
}

type logoutResponse struct {
	Redirect string `json:"redirect"`
}

type forgotPasswordResponse struct {
	ResetID  string `json:"reset_id"`
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

type resetSentResponse struct {
	Message string `json:"message"`
}

type resetPasswordResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

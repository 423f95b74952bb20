package requests

type RegisterUser struct {
	Name           string `json:"name" validate:"required,min=2,max=120"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,password"`
	RetypePassword string `json:"retype_password" validate:"required,eqfield=Password"`
	UserType       string `json:"user_type" validate:"required,user_type"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPassword struct {
	Token             string `json:"token" validate:"required"`
	NewPassword       string `json:"new_password" validate:"required,password"`
	RetypeNewPassword string `json:"retype_new_password" validate:"required,eqfield=NewPassword"`
}

type SessionOnly struct {
	SessionData string `json:"-"`
}

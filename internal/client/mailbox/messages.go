package mailbox

// Canonical messages produced by the account flows. Wording matches the
// backend-facing client this replaces.

func SignupSuccess() Message {
	return Message{
		Type:    TypeSuccess,
		Header:  "Registration Successful",
		Detail:  "Your account has been successfully created. A confirmation email has been sent to your email address. Please, verify.",
		ToLogin: true,
	}
}

func EmailVerifySuccess() Message {
	return Message{
		Type:    TypeSuccess,
		Header:  "Email Verified",
		Detail:  "Your email has been verified successfully.",
		ToLogin: true,
	}
}

func EmailChangeSuccess() Message {
	return Message{
		Type:    TypeSuccess,
		Header:  "Email Changed Successfully | Verify",
		Detail:  "Your email has been changed successfully. A confirmation email has been sent to your email address. Please, verify.",
		ToLogin: true,
	}
}

func ForgotPasswordSuccess() Message {
	return Message{
		Type:   TypeSuccess,
		Header: "Email Sent",
		Detail: "An email has been sent to the given email address if it exist in our database. Please, verify.",
	}
}

func PasswordChangeSuccess() Message {
	return Message{
		Type:    TypeSuccess,
		Header:  "Password Changed Successfully",
		Detail:  "Your password has been changed successfully. Please, login with your new password.",
		ToLogin: true,
	}
}

func TokenError() Message {
	return Message{
		Type:   TypeError,
		Header: "Token Invalid or Expired",
		Detail: "Token is invalid or has been expired. Please, try again later.",
	}
}

func NotFoundError() Message {
	return Message{
		Type:   TypeError,
		Header: "404 Not Found",
		Detail: "What you are looking for does not exist.",
	}
}

package services

import (
	"fmt"
	"html/template"
	"strings"
)

// Subjects for the two outbound messages. The copy is kept exactly as
// the clients of this API expect it.
const (
	subjectVerifyEmail   = "Verificate email for user app"
	subjectResetPassword = "Account recovery"
)

const verifyEmailTmpl = `
<html>
<head>
</head>
<body style="display: flex; justify-content: center;">
    <section style="width: 600px; height: 250px; background-color: rgba(236, 240, 228, 0.479); text-align: center; border-radius: 8px;">
        <h1 style="margin-bottom: 50px;">Hello {{.FirstName}} {{.LastName}}</h1>
        <p><a href="{{.Link}}" style="text-decoration: none; color: white; background-color: rgb(89, 138, 230); padding: 10px; border-radius: 8px;">Verification Code</a></p>
        <p><b>Thanks for sign up in user app</b></p>
    </section>
</body>
</html>`

const resetPasswordTmpl = `
<html>
<head>
</head>
<body style="display: flex; justify-content: center;">
    <section style="width: 600px; height: 250px; background-color: rgba(236, 240, 228, 0.479); text-align: center; border-radius: 8px;">
        <h1 style="margin-bottom: 50px;">Hello!</h1>
        <p>Hello, a password reset has been requested for your <span style="color: blue; cursor: pointer;"><u>{{.Email}}</u></span> account, click the button below to change your password</p>
        <p><a href="{{.Link}}" style="text-decoration: none; color: white; background-color: rgb(89, 138, 230); padding: 10px; border-radius: 8px;">Account recovery</a></p>
        <p><b>If you didn't make the password reset request, just ignore this message.</b></p>
    </section>
</body>
</html>`

// verifyEmailData feeds the verify-email template
type verifyEmailData struct {
	FirstName string
	LastName  string
	Link      string
}

// resetPasswordData feeds the reset-password template
type resetPasswordData struct {
	Email string
	Link  string
}

var (
	verifyEmailView   = template.Must(template.New("verify_email").Parse(verifyEmailTmpl))
	resetPasswordView = template.Must(template.New("reset_password").Parse(resetPasswordTmpl))
)

func renderVerifyEmail(data verifyEmailData) (string, error) {
	var b strings.Builder
	if err := verifyEmailView.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render verify email: %w", err)
	}
	return b.String(), nil
}

func renderResetPassword(data resetPasswordData) (string, error) {
	var b strings.Builder
	if err := resetPasswordView.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render reset email: %w", err)
	}
	return b.String(), nil
}

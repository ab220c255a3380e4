// Package login provides HTTP handlers for the admin login.
//
// This file defines the messages shown on the login form.
package login

const (
	// MsgNotSetUp is shown when no admin credentials exist.
	MsgNotSetUp = "Admin credentials not set up"

	// MsgEmptyPassword is shown when the password field is blank.
	MsgEmptyPassword = "Please enter a password"

	// MsgIncorrectPassword is shown when the password does not match.
	MsgIncorrectPassword = "Incorrect password"

	// MsgVerifyFailed is shown when the credential lookup itself failed.
	MsgVerifyFailed = "Error verifying password. Please try again."
)

package service

import (
	"context"
	"errors"
)

// ErrEmailRejected marks a message the provider will never accept; retrying is pointless.
var ErrEmailRejected = errors.New("email rejected permanently")

// EmailMessage is a rendered transactional email.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
}

// EmailSender delivers transactional email. Implementations without credentials
// accept and drop messages.
type EmailSender interface {
	Send(ctx context.Context, msg *EmailMessage) error
}

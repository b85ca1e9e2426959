package service

import "errors"

var (
	// ErrConversationNotFound marks lookups of unknown session keys so
	// the transport layer can map them to 404 instead of 500.
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrUnknownPersona marks requests naming a persona outside the
	// fixed catalog.
	ErrUnknownPersona = errors.New("unknown persona")
)

package controller

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"

	"idea-shaper-be/internal/service"
)

func TestServiceErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "unknown session",
			err:  service.ErrConversationNotFound,
			want: fiber.StatusNotFound,
		},
		{
			name: "wrapped unknown session",
			err:  fmt.Errorf("load state: %w", service.ErrConversationNotFound),
			want: fiber.StatusNotFound,
		},
		{
			name: "unknown persona",
			err:  fmt.Errorf("%w: venture-capitalist", service.ErrUnknownPersona),
			want: fiber.StatusBadRequest,
		},
		{
			name: "storage failure",
			err:  errors.New("connection refused"),
			want: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := serviceErrorStatus(tt.err); got != tt.want {
				t.Errorf("serviceErrorStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

package commands

import (
	"context"
	"testing"

	"aocsync/internal/application"
	"aocsync/internal/domain"
)

func TestSetCredentialCommand(t *testing.T) {
	tests := []struct {
		name    string
		session string
		want    string
		wantErr bool
	}{
		{name: "plain", session: "53616c7465645f5f", want: "53616c7465645f5f"},
		{name: "trimmed", session: "  abc\n", want: "abc"},
		{name: "empty", session: "", wantErr: true},
		{name: "blank", session: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.NewConfig()
			err := NewSetCredentialCommand(cfg, tt.session).Execute(context.Background())

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if cfg.HasSession() {
					t.Errorf("session should stay unset, got %q", cfg.Session)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Session != tt.want {
				t.Errorf("expected session %q, got %q", tt.want, cfg.Session)
			}
		})
	}
}

func TestShowCredentialCommand(t *testing.T) {
	cfg := domain.NewConfig()

	if _, err := NewShowCredentialCommand(cfg).Execute(context.Background()); err != application.ErrNoCredential {
		t.Errorf("expected ErrNoCredential, got %v", err)
	}

	cfg.Session = "abc"
	got, err := NewShowCredentialCommand(cfg).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abc" {
		t.Errorf("expected abc, got %q", got)
	}
}

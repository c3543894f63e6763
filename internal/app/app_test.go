package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/forPelevin/segview/internal/types"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "ok", cfg: Config{BaseURL: "https://clips.example.com", StoreDir: ".segview"}},
		{name: "default base url", cfg: Config{StoreDir: "store"}},
		{name: "empty store", cfg: Config{BaseURL: "https://clips.example.com", StoreDir: " "}, wantErr: true},
		{name: "bad base url", cfg: Config{BaseURL: "ftp://x", StoreDir: "store"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNew_WiresFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")
	uc := New(Config{StoreDir: dir})
	ctx := context.Background()

	in := []types.Segment{{Name: "Intro", VideoID: "abc123", StartTime: 10.7, EndTime: 20.3}}
	if err := uc.Save(ctx, "Demo Reel", in); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := uc.Load(ctx, "demo reel")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].StartTime != 11 || got[0].EndTime != 20 {
		t.Fatalf("unexpected segments: %+v", got)
	}
	names, err := uc.List(ctx)
	if err != nil || len(names) != 1 || names[0] != "demo-reel" {
		t.Fatalf("unexpected list %v (%v)", names, err)
	}
}

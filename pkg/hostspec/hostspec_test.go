package hostspec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	aliases := map[string]string{
		"home": "h.example.com",
		"work": "w.example.com",
	}

	tests := []struct {
		name    string
		spec    string
		want    Target
		wantErr bool
	}{
		{
			name: "bare host",
			spec: "server.example.com",
			want: Target{Host: "server.example.com"},
		},
		{
			name: "host with port",
			spec: "server.example.com:2022",
			want: Target{Host: "server.example.com", Port: 2022},
		},
		{
			name: "user and host",
			spec: "alice@server.example.com",
			want: Target{User: "alice", Host: "server.example.com"},
		},
		{
			name: "user host and port",
			spec: "alice@server.example.com:2022",
			want: Target{User: "alice", Host: "server.example.com", Port: 2022},
		},
		{
			name: "alias substitution",
			spec: "home",
			want: Target{Host: "h.example.com"},
		},
		{
			name: "alias preserves user prefix",
			spec: "alice@home",
			want: Target{User: "alice", Host: "h.example.com"},
		},
		{
			name: "alias preserves port",
			spec: "work:2022",
			want: Target{Host: "w.example.com", Port: 2022},
		},
		{
			name:    "two port separators",
			spec:    "server.example.com:22:22",
			wantErr: true,
		},
		{
			name:    "non-numeric port",
			spec:    "server.example.com:ssh",
			wantErr: true,
		},
		{
			name:    "port out of range",
			spec:    "server.example.com:70000",
			wantErr: true,
		},
		{
			name:    "empty host",
			spec:    "alice@:22",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.spec, aliases)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q) expected error, got %+v", tt.spec, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", tt.spec, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve(%q) mismatch (-want +got):\n%s", tt.spec, diff)
			}
		})
	}
}

func TestResolveWithoutAliases(t *testing.T) {
	got, err := Resolve("home", nil)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Host != "home" {
		t.Errorf("Expected unresolved alias to pass through, got %q", got.Host)
	}
}

func TestTargetString(t *testing.T) {
	if s := (Target{Host: "h"}).String(); s != "h" {
		t.Errorf("Expected 'h', got %q", s)
	}
	if s := (Target{User: "u", Host: "h"}).String(); s != "u@h" {
		t.Errorf("Expected 'u@h', got %q", s)
	}
}

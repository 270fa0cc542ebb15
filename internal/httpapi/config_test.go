package httpapi

import "testing"

func TestSetMaxBodyBytes_DefaultWhenNonPositive(t *testing.T) {
	SetMaxBodyBytes(-1)
	if maxBodyBytes != 4<<20 {
		t.Fatalf("expected default 4MiB, got %d", maxBodyBytes)
	}
	SetMaxBodyBytes(0)
	if maxBodyBytes != 4<<20 {
		t.Fatalf("expected default 4MiB on zero, got %d", maxBodyBytes)
	}
}

func TestSetMaxBodyBytes_PositiveSetsValue(t *testing.T) {
	defer SetMaxBodyBytes(0)
	SetMaxBodyBytes(1234)
	if maxBodyBytes != 1234 {
		t.Fatalf("expected 1234, got %d", maxBodyBytes)
	}
}

func TestSetCORSOptions_CopiesSlices(t *testing.T) {
	defer SetCORSOptions(false, nil, nil, nil)

	origins := []string{"http://a.example"}
	SetCORSOptions(true, origins, nil, nil)
	origins[0] = "http://mutated.example"
	if corsAllowedOrigins[0] != "http://a.example" {
		t.Fatalf("expected stored copy, got %q", corsAllowedOrigins[0])
	}
	if !corsEnabled {
		t.Fatalf("expected cors enabled")
	}
}

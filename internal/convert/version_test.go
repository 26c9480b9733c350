package convert

import "testing"

func TestParseVersionOutput(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    string
		wantErr bool
	}{
		{
			name: "ImageMagick 6",
			out:  "Version: ImageMagick 6.9.12-98 Q16 x86_64 18038\nCopyright: ...\n",
			want: "6.9.12-98",
		},
		{
			name: "ImageMagick 7",
			out:  "Version: ImageMagick 7.1.1-15 Q16-HDRI x86_64\n",
			want: "7.1.1-15",
		},
		{
			name:    "garbage",
			out:     "not a version banner\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVersionOutput(tt.out)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseVersionOutput error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMeetsMinimum(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"7.1.1-15", true},
		{"6.9.12-98", true},
		{"6.9.0", true},
		{"6.8.9", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := MeetsMinimum(tt.version)
			if err != nil {
				t.Fatalf("MeetsMinimum(%q) error: %v", tt.version, err)
			}
			if got != tt.want {
				t.Errorf("MeetsMinimum(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

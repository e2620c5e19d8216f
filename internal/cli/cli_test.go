package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/zarlcorp/zforms/internal/auth"
)

func TestDataDir(t *testing.T) {
	tests := []struct {
		name string
		xdg  string
		want string
	}{
		{
			name: "xdg set",
			xdg:  "/custom/data",
			want: "/custom/data/zforms",
		},
		{
			name: "xdg empty falls back to home",
			xdg:  "",
			want: "/.local/share/zforms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("XDG_DATA_HOME", tt.xdg)
			defer os.Unsetenv("XDG_DATA_HOME")

			got := DataDir()
			if tt.xdg != "" {
				if got != tt.want {
					t.Errorf("DataDir() = %s, want %s", got, tt.want)
				}
			} else {
				if !strings.HasSuffix(got, tt.want) {
					t.Errorf("DataDir() = %s, want suffix %s", got, tt.want)
				}
			}
		})
	}
}

func TestHasFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
		want bool
	}{
		{"present", []string{"--json", "--save"}, "--json", true},
		{"absent", []string{"--save"}, "--json", false},
		{"empty", nil, "--json", false},
		{"case insensitive", []string{"--JSON"}, "--json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasFlag(tt.args, tt.flag)
			if got != tt.want {
				t.Errorf("hasFlag(%v, %s) = %v, want %v", tt.args, tt.flag, got, tt.want)
			}
		})
	}
}

func TestReadLine(t *testing.T) {
	var out strings.Builder
	got, err := ReadLine("email: ", strings.NewReader("jane@example.com\n"), &out)
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if got != "jane@example.com" {
		t.Errorf("got %q", got)
	}
	if out.String() != "email: " {
		t.Errorf("prompt = %q", out.String())
	}
}

func TestReadLineTrimsWhitespace(t *testing.T) {
	var out strings.Builder
	got, err := ReadLine("> ", strings.NewReader("  jane  \n"), &out)
	if err != nil {
		t.Fatal(err)
	}
	if got != "jane" {
		t.Errorf("got %q", got)
	}
}

func TestOpenServicesSharesStore(t *testing.T) {
	dir := t.TempDir()

	authSvc, _, err := OpenServices(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	err = authSvc.Register(auth.RegisterInput{
		Username:        "jane",
		Email:           "jane@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
		PhoneNumber:     "5550100200",
		Location:        "Portland",
		AcceptTerms:     true,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := authSvc.Login("jane@example.com", "hunter22"); err != nil {
		t.Fatalf("login: %v", err)
	}

	// a second open over the same dir sees the session
	authSvc2, formSvc2, err := OpenServices(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	u, ok := authSvc2.CurrentUser()
	if !ok || u.Email != "jane@example.com" {
		t.Fatalf("session not restored: %+v ok=%v", u, ok)
	}
	if got := formSvc2.All(); len(got) != 0 {
		t.Fatalf("unexpected submissions: %+v", got)
	}
}

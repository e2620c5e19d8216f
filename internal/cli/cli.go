// Package cli implements zforms' command-line subcommands.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zforms/internal/auth"
	"github.com/zarlcorp/zforms/internal/forms"
	"github.com/zarlcorp/zforms/internal/kvstore"
	"golang.org/x/term"
)

// DataDir returns the default data directory for zforms.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/zforms"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zforms"
	}
	return home + "/.local/share/zforms"
}

// ReadPassword prompts for a password on w and reads it without echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// ReadLine prompts on w and reads one line from r.
func ReadLine(prompt string, r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// OpenServices opens the store in dir and wires the two state modules.
func OpenServices(dir string) (*auth.Service, *forms.Service, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}

	kv := kvstore.Open(zfilesystem.NewOSFileSystem(dir))
	authSvc := auth.New(kv)
	return authSvc, forms.New(kv, authSvc), nil
}

// CmdLogin prompts for credentials and starts a session.
func CmdLogin() {
	authSvc, _, err := OpenServices(DataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforms: %v\n", err)
		os.Exit(1)
	}

	email, err := ReadLine("email: ", os.Stdin, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforms: %v\n", err)
		os.Exit(1)
	}

	password, err := ReadPassword("password: ", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforms: %v\n", err)
		os.Exit(1)
	}

	u, err := authSvc.Login(email, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforms: login: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("logged in as %s <%s>\n", u.Username, u.Email)
}

// CmdLogout ends the current session.
func CmdLogout() {
	authSvc, _, err := OpenServices(DataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforms: %v\n", err)
		os.Exit(1)
	}

	authSvc.Logout()
	fmt.Println("logged out")
}

// CmdWhoami prints the current session's user.
func CmdWhoami() {
	authSvc, _, err := OpenServices(DataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforms: %v\n", err)
		os.Exit(1)
	}

	u, ok := authSvc.CurrentUser()
	if !ok {
		fmt.Println("not logged in")
		return
	}

	fmt.Printf("  username:  %s\n", u.Username)
	fmt.Printf("  email:     %s\n", u.Email)
	fmt.Printf("  phone:     %s\n", u.PhoneNumber)
	fmt.Printf("  location:  %s\n", u.Location)
}

// CmdList prints the submissions visible to the current session.
func CmdList(args []string) {
	asJSON := hasFlag(args, "--json")

	authSvc, formSvc, err := OpenServices(DataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforms: %v\n", err)
		os.Exit(1)
	}

	u, ok := authSvc.CurrentUser()
	if !ok {
		fmt.Fprintln(os.Stderr, "zforms: not logged in")
		os.Exit(1)
	}

	visible := formSvc.VisibleTo(u)
	if len(visible) == 0 {
		fmt.Println("no submissions")
		return
	}

	if asJSON {
		printJSON(visible)
		return
	}

	for _, rec := range visible {
		name := rec.FirstName + " " + rec.LastName
		fmt.Printf("  %-36s %-24s %-30s %s\n",
			rec.ID,
			name,
			rec.Email,
			rec.SubmittedAt.Format("2006-01-02"),
		)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "zforms: encode json: %v\n", err)
		os.Exit(1)
	}
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}

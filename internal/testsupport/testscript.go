package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/amonks/pomo/internal/state"
	internalstrings "github.com/amonks/pomo/internal/strings"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	pomoPath  string
	buildErr  error
)

// BuildPomo builds the pomo binary once and returns its path.
func BuildPomo(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "pomo-bin-")
		if err != nil {
			buildErr = err
			return
		}

		pomoPath = filepath.Join(binDir, "pomo")
		cmd := exec.Command("go", "build", "-o", pomoPath, "./cmd/pomo")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build pomo: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return pomoPath
}

// SetupScriptEnv configures common environment variables for testscript.
// Notifications are written to stderr so scripts can assert on them.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("POMO", BuildPomo(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("XDG_STATE_HOME", filepath.Join(homeDir, ".local", "state"))
	env.Setenv("POMO_HOME", filepath.Join(homeDir, ".config", "pomo"))
	env.Setenv("POMO_NOTIFIER", "stderr")
	env.Setenv("POMO_DEBUG", "")
	env.Setenv("NO_COLOR", "1")
	return nil
}

// Commands returns the custom testscript commands.
func Commands() map[string]func(*testscript.TestScript, bool, []string) {
	return map[string]func(*testscript.TestScript, bool, []string){
		"envset":      CmdEnvSet,
		"writestatus": CmdWriteStatus,
	}
}

// CmdEnvSet stores the contents of a file, such as a copy of a status line,
// in an env var with whitespace collapsed. Empty files are an error.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := internalstrings.NormalizeWhitespace(ts.ReadFile(args[1]))
	if value == "" {
		ts.Fatalf("envset: %s is empty", args[1])
	}
	ts.Setenv(args[0], value)
}

// CmdWriteStatus writes $POMO_HOME/status.json with times relative to now:
//
//	writestatus TYPE START END [NOTIFIED] [oneshot]
//
// START, END and NOTIFIED are Go durations such as -10m or 5m30s.
func CmdWriteStatus(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("writestatus does not support negation")
	}
	if len(args) < 3 || len(args) > 5 {
		ts.Fatalf("usage: writestatus TYPE START END [NOTIFIED] [oneshot]")
	}

	now := time.Now()
	offset := func(value string) time.Time {
		d, err := time.ParseDuration(value)
		if err != nil {
			ts.Fatalf("invalid offset %q: %v", value, err)
		}
		return now.Add(d)
	}

	st := state.Status{
		Type:  state.StatusType(args[0]),
		Start: offset(args[1]),
		End:   offset(args[2]),
	}
	if !st.Type.IsValid() {
		ts.Fatalf("invalid status type %q", args[0])
	}
	for _, extra := range args[3:] {
		if extra == "oneshot" {
			st.OneShot = true
			continue
		}
		notified := offset(extra)
		st.LastNotified = &notified
	}

	store := state.NewStore(ts.Getenv("POMO_HOME"))
	if err := store.Write(st); err != nil {
		ts.Fatalf("write status: %v", err)
	}
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}

//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
	"unsafe"

	"github.com/creack/pty"
)

const ringSize = 1 << 20 // 1 MiB of scrollback

var binPath = "activityboard_e2e" // set to an absolute path by TestMain

// Keys understood by the app
const (
	KeyEnter  = "\r"
	KeyEsc    = "\x1b"
	KeyCtrlC  = "\x03"
	KeyQuit   = "q"
	KeySearch = "/"
	KeySignup = "n"
	KeyTab    = "\t"
	KeyDelete = "d"
)

// ansiRe strips CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// TUITestFramework runs the app in a PTY and records everything it draws
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string

	mu   sync.Mutex
	buf  []byte // ring buffer of raw output
	head int
	full bool
}

// NewTUITest creates a new TUI test framework instance
func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{
		t:   t,
		buf: make([]byte, ringSize),
	}
}

// StartApp launches the binary with args inside a 120x40 PTY
func (tf *TUITestFramework) StartApp(args ...string) error {
	tf.cmd = exec.Command(binPath, args...)
	tf.cmd.Dir = tf.workspace
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+tf.workspace,
		"XDG_CONFIG_HOME="+tf.workspace,
		"ACTIVITYBOARD_E2E_TEST=1",
	)

	ptyFile, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}
	tf.pty = ptyFile
	tf.tty = tty
	tf.cmd.Stdout = tty
	tf.cmd.Stdin = tty
	tf.cmd.Stderr = tty

	ws := struct {
		Row uint16
		Col uint16
		X   uint16
		Y   uint16
	}{40, 120, 0, 0}
	syscall.Syscall(syscall.SYS_IOCTL, ptyFile.Fd(), uintptr(syscall.TIOCSWINSZ), uintptr(unsafe.Pointer(&ws)))

	if err := tf.cmd.Start(); err != nil {
		ptyFile.Close()
		tty.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}

	go tf.read()
	return nil
}

// read copies PTY output into the ring buffer until the PTY closes
func (tf *TUITestFramework) read() {
	chunk := make([]byte, 8192)
	for {
		n, err := tf.pty.Read(chunk)
		if n > 0 {
			tf.mu.Lock()
			for _, b := range chunk[:n] {
				tf.buf[tf.head] = b
				tf.head = (tf.head + 1) % ringSize
				if tf.head == 0 {
					tf.full = true
				}
			}
			tf.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// SendKeys writes raw keystrokes to the app
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// TypeText sends text one key at a time so each keystroke is processed
func (tf *TUITestFramework) TypeText(text string) error {
	tf.t.Helper()
	for _, r := range text {
		if err := tf.SendKeys(string(r)); err != nil {
			return err
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

func (tf *TUITestFramework) SendCtrlC() error { return tf.SendKeys(KeyCtrlC) }
func (tf *TUITestFramework) Quit() error { return tf.SendKeys(KeyQuit) }
func (tf *TUITestFramework) Enter() error { return tf.SendKeys(KeyEnter) }
func (tf *TUITestFramework) Escape() error { return tf.SendKeys(KeyEsc) }
func (tf *TUITestFramework) Search() error { return tf.SendKeys(KeySearch) }
func (tf *TUITestFramework) OpenSignup() error { return tf.SendKeys(KeySignup) }
func (tf *TUITestFramework) NextActivity() error { return tf.SendKeys(KeyTab) }
func (tf *TUITestFramework) Unregister() error { return tf.SendKeys(KeyDelete) }

// Ready waits for the app to signal it's ready
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool { return strings.Contains(s, "__READY__") }, 5*time.Second)
}

// SeePlain waits for text to appear in the ANSI-stripped output
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(text, 3*time.Second)
}

// WaitForStatusMessage waits for a status line text
func (tf *TUITestFramework) WaitForStatusMessage(message string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(message, timeout)
}

// OutputContainsPlain checks if the normalized output contains text within a timeout
func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

// WaitFor polls the raw output until pred holds or timeout passes
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// Snapshot returns the current contents of the ring buffer
func (tf *TUITestFramework) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, 0, ringSize)
	out = append(out, tf.buf[tf.head:]...)
	out = append(out, tf.buf[:tf.head]...)
	return string(out)
}

// SnapshotPlain returns the ring buffer with ANSI sequences removed
func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTailOnFail saves the last n bytes of normalized output for debugging
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, name string, n int) {
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(s), 0644)
	t.Logf("Saved tail to %s", p)
}

// Cleanup closes the PTY and terminates the application
func (tf *TUITestFramework) Cleanup() {
	// Closing the PTY delivers SIGHUP to the child
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.tty != nil {
		_ = tf.tty.Close()
		tf.tty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
}

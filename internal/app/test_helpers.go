package app

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/packinit/internal/prompt"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an App that answers from a replay of answers and
// writes into a temporary project directory.
func SetupAppTest(t *testing.T, cfg Config, answers []any, opts ...Option) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	if cfg.Dir == "" {
		cfg.Dir = t.TempDir()
	}
	cfg.LogLevel = "debug"
	appConfig, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	opts = append([]Option{WithSource(prompt.NewReplay(answers...))}, opts...)
	testApp := NewApp(strings.NewReader(""), outBuffer, logBuffer, appConfig, opts...)

	t.Cleanup(func() {
		if os.Getenv("PACKINIT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}

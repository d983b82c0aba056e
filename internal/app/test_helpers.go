package app

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
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

// SetupAppTest creates an App that reads input from the given string. It
// returns the app together with buffers holding its order output and logs.
func SetupAppTest(t *testing.T, cfg *Config, input string) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	cfg.LogLevel = "debug"

	testApp, err := NewApp(Streams{In: strings.NewReader(input), Out: out, Err: logs}, cfg)
	if err != nil {
		t.Fatalf("failed to set up app: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("TAQUERIA_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}

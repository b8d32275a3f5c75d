//go:build e2e

package e2e

import (
	"os"
	"os/exec"
	"runtime"
	"testing"
)

// browserProfilePattern matches the temporary profiles rod and playwright
// launch with, so a developer's own browser is left alone.
const browserProfilePattern = "user-data-dir=.*(rod|playwright)"

func TestMain(m *testing.M) {
	code := m.Run()

	if os.Getenv("UICHECK_E2E_KEEP_BROWSERS") == "" {
		cleanupOrphanedBrowsers()
	}

	os.Exit(code)
}

// cleanupOrphanedBrowsers kills browsers a test left behind. Sessions are
// normally released by t.Cleanup; this catches os.Exit during a test and
// browsers whose kill failed on release.
func cleanupOrphanedBrowsers() {
	switch runtime.GOOS {
	case "darwin", "linux":
		// pkill exits non-zero when nothing matched.
		_ = exec.Command("pkill", "-f", browserProfilePattern).Run()
	case "windows":
		_ = exec.Command("taskkill", "/F", "/IM", "chrome.exe").Run()
		_ = exec.Command("taskkill", "/F", "/IM", "chromium.exe").Run()
	}
}

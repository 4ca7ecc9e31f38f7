package cli

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/matzehuels/tileplan/pkg/cache"
)

func TestCacheDirOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "plans")
	t.Setenv(cacheDirEnv, custom+string(filepath.Separator))

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != custom {
		t.Errorf("cacheDir() = %q, want %q", dir, custom)
	}
}

func TestCacheDirXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CACHE_HOME is only honoured on Linux")
	}
	t.Setenv(cacheDirEnv, "")
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv(cacheDirEnv, t.TempDir())

	c, err := newCache(true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(cache.NullCache); !ok {
		t.Errorf("newCache(true) = %T, want NullCache", c)
	}

	c, err = newCache(false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*cache.FileCache); !ok {
		t.Errorf("newCache(false) = %T, want *FileCache", c)
	}
}

func TestCacheCommands(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(cacheDirEnv, dir)

	got, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(got) != dir {
		t.Errorf("cache path = %q, want %q", got, dir)
	}

	if _, err := execute(t, "calculate", studio); err != nil {
		t.Fatal(err)
	}
	got, err = execute(t, "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Cleared 1 cached plans") {
		t.Errorf("cache clear output = %q", got)
	}
}

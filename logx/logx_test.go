package logx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	for l := DEBUG; l < LevelCount; l++ {
		got, err := ParseLevel(strings.ToUpper(l.String()))
		if err != nil || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v", l.String(), got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	l := NewFileLogger(f, INFO, ColorAuto)
	l.now = func() time.Time { return time.Date(2020, 5, 17, 13, 4, 5, 0, time.UTC) }
	log := NewLogToX(l, "search")
	log.LogPrint(DEBUG, "hidden")
	log.LogPrint(INFO, "sections ", 12)
	log.LogPrintf(WARN, "%d candidates", 3)
	log.LogPrintln(ERROR, "done", 1)

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := "2020-05-17 13:04:05     INFO [search] sections 12\n" +
		"2020-05-17 13:04:05  WARNING [search] 3 candidates\n" +
		"2020-05-17 13:04:05    ERROR [search] done 1\n"
	if string(b) != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, b)
	}
}

func TestFileLoggerColorOn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	l := NewFileLogger(f, DEBUG, ColorOn)
	l.LogPrintfX("cpu", DEBUG, "x\n")
	b, _ := os.ReadFile(path)
	if !strings.Contains(string(b), "\033[37m   DEBUG\033[0m [\033[36mcpu\033[0m] x\n") {
		t.Errorf("Expected colored line, got %q", b)
	}
}

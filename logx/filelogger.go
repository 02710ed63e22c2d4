package logx

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"time"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
)

type UseColor int

const (
	ColorAuto UseColor = iota
	ColorOn
	ColorOff
)

type logLevels [LevelCount]string

var levelstrings = [2]logLevels{
	// uncolored
	{
		DEBUG:    "   DEBUG",
		INFO:     "    INFO",
		NOTICE:   "  NOTICE",
		WARN:     " WARNING",
		ERROR:    "   ERROR",
		CRITICAL: "CRITICAL",
	},
	// colored
	{
		DEBUG:    "\033[37m   DEBUG\033[0m",
		INFO:     "\033[34m    INFO\033[0m",
		NOTICE:   "\033[32m  NOTICE\033[0m",
		WARN:     "\033[33m WARNING\033[0m",
		ERROR:    "\033[31m   ERROR\033[0m",
		CRITICAL: "\033[35mCRITICAL\033[0m",
	},
}

var formatstrings = [2]string{
	// uncolored
	"%s %s [%s] ",
	// colored
	"%s %s [\033[36m%s\033[0m] ",
}

var _ LoggerX = (*FileLogger)(nil)

// FileLogger writes one line per message to a file, usually stderr.
type FileLogger struct {
	w   *bufio.Writer
	l   sync.Mutex
	t   uint
	m   Level
	now func() time.Time
}

func NewFileLogger(f *os.File, logLevel Level, c UseColor) *FileLogger {
	l := &FileLogger{m: logLevel, now: time.Now}
	fd := f.Fd()
	if c != ColorOff && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		l.w = bufio.NewWriter(colorable.NewColorable(f))
		l.t = 1
	} else {
		l.w = bufio.NewWriter(f)
		if c == ColorOn {
			l.t = 1
		}
	}
	return l
}

func (l *FileLogger) Level() Level {
	return l.m
}

func (l *FileLogger) prepareWrite(section string, lvl Level) {
	ts := l.now().UTC().Format("2006-01-02 15:04:05")
	fmt.Fprintf(l.w, formatstrings[l.t], ts, levelstrings[l.t][lvl], section)
}

func (l *FileLogger) finish() {
	l.w.Flush()
}

func (l *FileLogger) LogPrintX(section string, lvl Level, v ...interface{}) {
	if l.m > lvl {
		return
	}
	l.l.Lock()
	defer l.l.Unlock()

	l.prepareWrite(section, lvl)
	fmt.Fprintln(l.w, fmt.Sprint(v...))
	l.finish()
}

func (l *FileLogger) LogPrintlnX(section string, lvl Level, v ...interface{}) {
	if l.m > lvl {
		return
	}
	l.l.Lock()
	defer l.l.Unlock()

	l.prepareWrite(section, lvl)
	fmt.Fprintln(l.w, v...)
	l.finish()
}

func (l *FileLogger) LogPrintfX(section string, lvl Level, fmts string, v ...interface{}) {
	if l.m > lvl {
		return
	}
	l.l.Lock()
	defer l.l.Unlock()

	l.prepareWrite(section, lvl)
	fmt.Fprintf(l.w, fmts, v...)
	if n := len(fmts); n == 0 || fmts[n-1] != '\n' {
		l.w.WriteByte('\n')
	}
	l.finish()
}

// Package cmd The command line tool for running batchresize.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/go-imsto/batchresize/config"
	zlog "github.com/go-imsto/batchresize/log"
)

// Command Cribbed from the genius organization of the "go" command.
type Command struct {
	Run                    func(args []string, stdout io.Writer) error
	UsageLine, Short, Long string
}

func (cmd *Command) Name() string {
	name := cmd.UsageLine
	i := strings.Index(name, " ")
	if i >= 0 {
		name = name[:i]
	}
	return name
}

func (cmd *Command) Usage(w io.Writer) {
	fmt.Fprintln(w, "version ", config.Version)
	tmpl(w, helpTemplate, cmd)
	fmt.Fprintf(w, "Environment:\n")
	if err := config.Usage(w); err != nil {
		errorf(w, "%s", err)
	}
}

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// errUsage marks errors caused by the command line itself
var errUsage = errors.New("usage")

func logger() zlog.Logger {
	return zlog.Get()
}

func Main() {
	if code := loadConfig(os.Stderr); code != exitOK {
		os.Exit(code)
	}

	zl, err := zlog.NewZap(config.InDevelop())
	if err == nil {
		zlog.Set(zl.Sugar())
	}

	code := execute(cmdResize, os.Args[1:], os.Stdout, os.Stderr)
	if zl != nil {
		_ = zl.Sync() // flushes buffer, os.Exit skips defers
	}
	os.Exit(code)
}

// loadConfig reads the environment settings, a bad value is a usage error
func loadConfig(stderr io.Writer) int {
	if _, err := config.Load(); err != nil {
		errorf(stderr, "invalid environment: %s", err)
		return exitUsage
	}
	return exitOK
}

func isHelp(args []string) bool {
	return len(args) == 1 && (args[0] == "-h" || args[0] == "--help")
}

// execute runs cmd and maps its outcome to an exit status.
// Arguments are positional only, a leading dash is part of a folder name.
func execute(cmd *Command, args []string, stdout, stderr io.Writer) int {
	if isHelp(args) {
		cmd.Usage(stdout)
		return exitOK
	}

	err := cmd.Run(args, stdout)
	if err == nil {
		return exitOK
	}
	if errors.Is(err, errUsage) {
		errorf(stderr, "%s", strings.TrimPrefix(err.Error(), errUsage.Error()+": "))
		return exitUsage
	}
	logger().Errorw("run failed", "err", err)
	errorf(stderr, "%s: %s", cmd.Name(), err)
	return exitFail
}

func errorf(w io.Writer, format string, args ...interface{}) {
	// Ensure the user's command prompt starts on the next line.
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(w, format, args...)
}

var helpTemplate = `usage: {{.UsageLine}}

{{.Short}}
{{.Long}}
`

func tmpl(w io.Writer, text string, data interface{}) {
	t := template.New("top")
	template.Must(t.Parse(text))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}

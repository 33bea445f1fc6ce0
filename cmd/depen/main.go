package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	depenlang "github.com/alk0x1/DepenLang"
)

const (
	appName     = "depen"
	historyFile = ".depenlang_history"
	promptMain  = "==> "
	promptCont  = "... "
)

var (
	banner = fmt.Sprintf("DepenLang %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", depenlang.Version)

	helpText = `
REPL commands:
  :quit         Exit the REPL
  :tree on|off  Show the AST diagram before each result
  :help         Show this help
`
)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "tree":
		os.Exit(cmdTree(os.Args[2:]))
	case "version":
		fmt.Println(depenlang.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`DepenLang %s (built %s)

Usage:
  %s run <file>      Interpret each term in a file (one term per line).
  %s repl            Start the REPL.
  %s tree <file>     Print the AST diagram of each term in a file.
  %s version         Print the compiled version

`, depenlang.Version, depenlang.BuildDate, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run / tree
// -----------------------------------------------------------------------------

// forEachTerm applies fn to every non-blank line of the file, reporting
// the line's errors to stderr and continuing with the next one.
func forEachTerm(file string, fn func(src string) error) int {
	f, err := os.Open(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}
	defer f.Close()

	ret := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		src := strings.TrimSpace(sc.Text())
		if src == "" {
			continue
		}
		if err := fn(src); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			ret = 1
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: reading %s: %v\n", appName, file, err)
		return 1
	}
	return ret
}

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file>\n", appName)
		return 2
	}
	ip := depenlang.NewInterpreter()
	return forEachTerm(args[0], func(src string) error {
		out, err := runLine(ip, args[0], src)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	})
}

// runLine interprets a single source term and returns its rendered normal
// form. Lex/parse errors carry the file name like cmdTree's do; evaluation
// and reification errors surface as *RuntimeError, never a panic.
func runLine(ip *depenlang.Interpreter, file, src string) (string, error) {
	t, err := depenlang.Parse(src)
	if err != nil {
		return "", depenlang.WrapErrorWithName(err, file, src)
	}
	v, err := ip.EvalTerm(t, nil)
	if err != nil {
		return "", err
	}
	out, err := ip.ReifyValue(v)
	if err != nil {
		return "", err
	}
	return depenlang.PrettyPrint(out), nil
}

func cmdTree(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s tree <file>\n", appName)
		return 2
	}
	return forEachTerm(args[0], func(src string) error {
		t, err := depenlang.Parse(src)
		if err != nil {
			return depenlang.WrapErrorWithName(err, args[0], src)
		}
		fmt.Print(depenlang.AsciiTree(t))
		return nil
	})
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := depenlang.NewInterpreter()
	showTree := false

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(code)
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			case ":help":
				fmt.Print(helpText)
			case ":tree on":
				showTree = true
			case ":tree off":
				showTree = false
			default:
				fmt.Printf("unknown command. Type :help for commands, :quit to exit.\n")
			}
			continue
		}
		if trimmed == "" {
			continue
		}

		t, err := depenlang.Parse(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(depenlang.WrapErrorWithName(err, "<repl>", code).Error()))
			continue
		}
		if showTree {
			fmt.Print(green(depenlang.AsciiTree(t)))
		}
		v, err := ip.EvalTerm(t, nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		out, err := ip.ReifyValue(v)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		fmt.Println(blue(depenlang.PrettyPrint(out)))
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readByParseProbe accumulates lines until the buffer parses or fails with
// something other than an incomplete-input error. Returns false on EOF.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		trimmed := strings.TrimSpace(src)
		if trimmed == "" || strings.HasPrefix(trimmed, ":") {
			return src, true
		}
		_, perr := depenlang.ParseInteractive(src)
		if perr == nil || !depenlang.IsIncomplete(perr) {
			return src, true
		}
	}
}

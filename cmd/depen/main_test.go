package main

import (
	"strings"
	"testing"

	depenlang "github.com/alk0x1/DepenLang"
)

func Test_RunLine_Interprets_A_Term(t *testing.T) {
	ip := depenlang.NewInterpreter()
	out, err := runLine(ip, "demo.lam", `(\x. x) y`)
	if err != nil {
		t.Fatalf("runLine: %v", err)
	}
	if out != "y" {
		t.Fatalf("want %q, got %q", "y", out)
	}
}

func Test_RunLine_Names_The_File_In_Diagnostics(t *testing.T) {
	ip := depenlang.NewInterpreter()

	_, err := runLine(ip, "demo.lam", "x $")
	if err == nil || !strings.Contains(err.Error(), "LEXICAL ERROR in demo.lam at") {
		t.Fatalf("lex diagnostic should carry the file name, got: %v", err)
	}

	_, err = runLine(ip, "demo.lam", "(x")
	if err == nil || !strings.Contains(err.Error(), "PARSE ERROR in demo.lam at") {
		t.Fatalf("parse diagnostic should carry the file name, got: %v", err)
	}
}

func Test_RunLine_Stuck_Probe_Returns_Error(t *testing.T) {
	// Must come back as an error the loop can report before moving on to
	// the next line, never a panic out of reification.
	ip := depenlang.NewInterpreter()
	_, err := runLine(ip, "demo.lam", `\x. x x`)
	if _, ok := err.(*depenlang.RuntimeError); !ok {
		t.Fatalf("want *RuntimeError, got %T: %v", err, err)
	}
}

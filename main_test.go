package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCapture(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	err := runWith(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func readGolden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return string(data)
}

func TestRenderFileMatchesGolden(t *testing.T) {
	out, stderr, err := runCapture(t, "", "./testdata/abs.yaml")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := readGolden(t, "abs.rst"); out != want {
		t.Fatalf("unexpected output\nwant:\n%s\ngot:\n%s", want, out)
	}
	assertContains(t, stderr, "WARN command not recognized, skipping")
	assertContains(t, stderr, "command=FLOPPY")
	assertContains(t, stderr, "source=./testdata/abs.yaml")
	if strings.Count(stderr, "not recognized") != 1 {
		t.Fatalf("expected exactly one diagnostic\n\n%s", stderr)
	}
}

func TestRenderConcatenatesSources(t *testing.T) {
	out, _, err := runCapture(t, "", "./testdata/abs.yaml", "./testdata/strtod.json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := readGolden(t, "abs_strtod.rst"); out != want {
		t.Fatalf("unexpected output\nwant:\n%s\ngot:\n%s", want, out)
	}
}

func TestRenderFromStdin(t *testing.T) {
	in := "- command: NOTES\n  text: see <[errno]>\n"
	out, _, err := runCapture(t, in)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "**NOTES:**\n\nsee ``errno``\n\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestOutputFlagWritesFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "docs", "abs.rst")
	out, _, err := runCapture(t, "", "-o", target, "./testdata/abs.yaml")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "" {
		t.Fatalf("expected empty stdout, got %q", out)
	}
	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	assertContains(t, string(content), "**CALLING SEQUENCE:**")
}

func TestStrictFailsOnSkippedCommands(t *testing.T) {
	out, _, err := runCapture(t, "", "-strict", "./testdata/abs.yaml")
	if err == nil {
		t.Fatalf("expected strict mode to fail")
	}
	assertContains(t, err.Error(), "FLOPPY")
	assertContains(t, out, "abs - Integer absolute value")
}

func TestStrictFromEnvironment(t *testing.T) {
	t.Setenv("GODOCRST_STRICT", "true")
	var stdout, stderr bytes.Buffer
	err := runWith([]string{"./testdata/abs.yaml"}, strings.NewReader(""), &stdout, &stderr)
	if err == nil {
		t.Fatalf("expected GODOCRST_STRICT to enable strict mode")
	}
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "docrst.yaml")
	if err := os.WriteFile(cfg, []byte("log:\n  level: error\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, stderr, err := runCapture(t, "", "--config", cfg, "./testdata/abs.yaml")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stderr != "" {
		t.Fatalf("expected warnings to be filtered, got %q", stderr)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := runCapture(t, "", "--log-level", "loud", "./testdata/abs.yaml")
	if err == nil {
		t.Fatalf("expected invalid config error")
	}
	assertContains(t, err.Error(), `log.level "loud"`)
}

func TestStdoutLogFormatsRequireOutputFile(t *testing.T) {
	for _, format := range []string{"json", "pretty"} {
		out, _, err := runCapture(t, "", "--log-format", format, "./testdata/abs.yaml")
		if err == nil {
			t.Fatalf("expected %s diagnostics without -o to be rejected", format)
		}
		assertContains(t, err.Error(), "requires output.path")
		if out != "" {
			t.Fatalf("expected nothing rendered, got %q", out)
		}
	}
}

func TestJSONLogFormatKeepsDiagnosticsOutOfDocument(t *testing.T) {
	target := filepath.Join(t.TempDir(), "abs.rst")
	_, _, err := runCapture(t, "", "--log-format", "json", "-o", target, "./testdata/abs.yaml")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if want := readGolden(t, "abs.rst"); string(content) != want {
		t.Fatalf("unexpected output\nwant:\n%s\ngot:\n%s", want, content)
	}
}

func TestMissingInputFile(t *testing.T) {
	_, _, err := runCapture(t, "", "./testdata/nope.yaml")
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestConvertCommand(t *testing.T) {
	out, _, err := runCapture(t, "", "convert", "FUNCTION", "*foo*, *bar* --- does a thing.")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, out, "foo, bar - Does a thing.\n")
	assertContains(t, out, ".. index:: bar\n")
}

func TestConvertReadsStdin(t *testing.T) {
	out, _, err := runCapture(t, "typedef int foo_t;\n", "convert", "TYPEDEF")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "**TYPEDEF:**\n\n.. code-block:: c\n\ntypedef int foo_t;\n\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConvertUnknownCommand(t *testing.T) {
	out, stderr, err := runCapture(t, "", "convert", "BOGUS", "text")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
	assertContains(t, stderr, "command=BOGUS")
}

func TestCommandsListsRegistry(t *testing.T) {
	out, _, err := runCapture(t, "", "commands")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, out, "COMMAND")
	assertContains(t, out, "RETURNS")
	assertContains(t, out, "STATUS CODES")
	assertContains(t, out, "CALLING SEQUENCE")
	assertContains(t, out, "suppressed")
}

func TestConfigShow(t *testing.T) {
	target := filepath.Join(t.TempDir(), "abs.rst")
	out, _, err := runCapture(t, "", "config", "show", "--log-format", "pretty", "-o", target)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, out, `log.format = "pretty"`)
	assertContains(t, out, `output.path = "`+target+`"`)
	assertContains(t, out, `log.level = "warn"`)
}

func TestNormalizeLegacyArgs(t *testing.T) {
	got := normalizeLegacyArgs([]string{"-strict", "-output=x.rst", "-o", "y", "--", "-strict"})
	want := []string{"--strict", "--output=x.rst", "-o", "y", "--", "-strict"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n\n%s", needle, haystack)
	}
}

func TestHelpFlag(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"--help"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	assertContains(t, out, "go-docrst [flags] [file...]")
	assertContains(t, out, "--strict")
	assertContains(t, out, "completion  Generate shell completion scripts")
}

func TestCompletionCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"completion", "bash"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected completion output")
	}
	assertContains(t, buf.String(), "__start_go-docrst")
}

func TestGenDocsCommand(t *testing.T) {
	tmp := t.TempDir()
	if err := run([]string{"gen-docs", tmp}, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	files, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	var foundRoot bool
	for _, f := range files {
		if f.Name() == "go-docrst.md" {
			foundRoot = true
			break
		}
	}
	if !foundRoot {
		t.Fatalf("expected go-docrst.md in docs output, got %v", files)
	}
}

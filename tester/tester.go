package tester

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lambada-lang/lambada/interp"
	"github.com/lambada-lang/lambada/syntax"
)

// A test case file consists of three parts delimited by `---` lines: a
// description, a source program, and the expected output of main. An
// expected part of the form `error: <substring>` asserts that evaluation
// fails with a message containing the substring.
type TestCase struct {
	Description string
	Source      []byte
	Output      string
}

func (c *TestCase) expectsError() (string, bool) {
	if strings.HasPrefix(c.Output, "error:") {
		return strings.TrimSpace(strings.TrimPrefix(c.Output, "error:")), true
	}
	return "", false
}

type TestCaseWithMetadata struct {
	TestCase *TestCase
	FilePath string
	Error    error
}

type TestResult struct {
	TestCasePath string
	Error        error
}

func (r *TestResult) String() string {
	if r.Error != nil {
		const indent = "    "
		msgLines := strings.Split(r.Error.Error(), "\n")
		return fmt.Sprintf("Failed %v:\n%v%v", r.TestCasePath, indent, strings.Join(msgLines, "\n"+indent))
	}
	return fmt.Sprintf("Passed %v", r.TestCasePath)
}

// ListTestCases walks a test case file or a directory of them.
func ListTestCases(testPath string) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	if !fi.IsDir() {
		c, err := parseTestCase(testPath)
		return []*TestCaseWithMetadata{
			{
				TestCase: c,
				FilePath: testPath,
				Error:    err,
			},
		}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		cs := ListTestCases(filepath.Join(testPath, e.Name()))
		cases = append(cases, cs...)
	}
	return cases
}

func parseTestCase(testCasePath string) (*TestCase, error) {
	f, err := os.Open(testCasePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTestCase(f)
}

func ParseTestCase(r io.Reader) (*TestCase, error) {
	bufs, err := splitIntoParts(r)
	if err != nil {
		return nil, err
	}
	if len(bufs) != 3 {
		return nil, fmt.Errorf("too many or too few part delimiters: a test case consists of just three parts: %v parts found", len(bufs))
	}
	return &TestCase{
		Description: string(bufs[0]),
		Source:      bufs[1],
		Output:      strings.TrimSpace(string(bufs[2])),
	}, nil
}

func splitIntoParts(r io.Reader) ([][]byte, error) {
	var bufs [][]byte
	s := bufio.NewScanner(r)
	for {
		buf, err := readPart(s)
		if err != nil {
			return nil, err
		}
		if buf == nil {
			break
		}
		bufs = append(bufs, buf)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return bufs, nil
}

var reDelim = regexp.MustCompile(`^\s*---+\s*$`)

func readPart(s *bufio.Scanner) ([]byte, error) {
	if !s.Scan() {
		return nil, s.Err()
	}
	buf := &bytes.Buffer{}
	line := s.Bytes()
	if reDelim.Match(line) {
		// Return an empty slice because (*bytes.Buffer).Bytes() returns
		// nil if we have never written data.
		return []byte{}, nil
	}
	if _, err := buf.Write(line); err != nil {
		return nil, err
	}
	for s.Scan() {
		line := s.Bytes()
		if reDelim.Match(line) {
			return buf.Bytes(), nil
		}
		if _, err := buf.Write([]byte("\n")); err != nil {
			return nil, err
		}
		if _, err := buf.Write(line); err != nil {
			return nil, err
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type Tester struct {
	Cases []*TestCaseWithMetadata
}

func (t *Tester) Run() []*TestResult {
	var rs []*TestResult
	for _, c := range t.Cases {
		rs = append(rs, runTest(c))
	}
	return rs
}

func runTest(c *TestCaseWithMetadata) *TestResult {
	out, err := run(c.TestCase)
	if want, ok := c.TestCase.expectsError(); ok {
		if err == nil {
			return &TestResult{
				TestCasePath: c.FilePath,
				Error:        fmt.Errorf("an error was expected but evaluation succeeded with %#v", out),
			}
		}
		if !strings.Contains(err.Error(), want) {
			return &TestResult{
				TestCasePath: c.FilePath,
				Error:        fmt.Errorf("unexpected error: want a message containing %#v, got %#v", want, err.Error()),
			}
		}
		return &TestResult{
			TestCasePath: c.FilePath,
		}
	}
	if err != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        err,
		}
	}
	if out != c.TestCase.Output {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        fmt.Errorf("unexpected output: want %#v, got %#v", c.TestCase.Output, out),
		}
	}
	return &TestResult{
		TestCasePath: c.FilePath,
	}
}

func run(c *TestCase) (string, error) {
	bindings, err := syntax.ParseFile(bytes.NewReader(c.Source), "")
	if err != nil {
		return "", err
	}
	return interp.EvalProgram(bindings)
}

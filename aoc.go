// Package aoc are quick & dirty utilities for solving the 2023 Advent of
// Code problems. (forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
	args  []int
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// parseSample parses a doc comment of the form
//
//	want=<answer> [args=<n>...]
//
//	<input>
//
// The input is optional.
func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	s := sample{
		want:  strings.TrimSpace(m[1]),
		input: m[2],
	}
	if want, args, ok := strings.Cut(s.want, " args="); ok {
		s.want = strings.TrimSpace(want)
		s.args = Fields(args)
	}
	return s, true
}

// extractSamples returns the samples found in the doc comments of every Go
// file at the root of src, keyed by method name. A sample without input
// reuses the input of the previous sample in the same file.
func extractSamples(src fs.FS) map[string]sample {
	names, err := fs.Glob(src, "*.go")
	if err != nil {
		log.Fatalf("listing sources: %v", err)
	}
	samples := make(map[string]sample)
	fset := token.NewFileSet()
	for _, name := range names {
		b, err := fs.ReadFile(src, name)
		if err != nil {
			log.Fatalf("reading %s: %v", name, err)
		}
		f, err := parser.ParseFile(fset, name, b, parser.ParseComments)
		if err != nil {
			log.Fatalf("parsing %s to extract samples: %v", name, err)
		}
		var lastInput string
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if ok {
					s.input = Or(s.input, lastInput)
					samples[fd.Name.Name] = s
					lastInput = s.input
					break
				}
			}
		}
	}
	return samples
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	cfg     Config
	solver  partSolver
	samples map[string]sample

	// input and args are set when solving a single input file.
	input []byte
	args  []int
}

func (p *Puzzle) Input() []byte {
	if p.input != nil {
		return p.input
	}
	if p.SampleMode {
		s, _ := p.Sample()
		return []byte(s.input)
	}
	p.input = p.cfg.fileOrFetch(fmt.Sprintf("%d/%d.input", p.year, p.day.day), fmt.Sprintf("/%d/day/%d/input", p.year, p.day.day))
	return p.input
}

// Lines returns the lines of the input, without the trailing newline.
func (p *Puzzle) Lines() []string {
	in := strings.TrimRight(string(p.Input()), "\n")
	if in == "" {
		return nil
	}
	return strings.Split(in, "\n")
}

// Blocks returns the groups of lines of the input that are separated by
// blank lines.
func (p *Puzzle) Blocks() [][]string {
	var out [][]string
	var cur []string
	for _, line := range p.Lines() {
		if line == "" {
			if cur != nil {
				out = append(out, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	if cur != nil {
		out = append(out, cur)
	}
	return out
}

// Grid returns the input as a grid of bytes, one row per line.
func (p *Puzzle) Grid() Grid[byte] {
	return ParseGrid(p.Lines(), func(b byte) byte { return b })
}

// Arg returns the i-th extra numeric argument, or def if it was not given.
// In sample mode the arguments come from the sample's args= list.
func (p *Puzzle) Arg(i int, def int) int {
	args := p.args
	if p.SampleMode {
		s, _ := p.Sample()
		args = s.args
	}
	if i < len(args) {
		return args[i]
	}
	return def
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(p.Input()))
	s.Buffer(nil, 1<<20)
	return s
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Fprintln(os.Stderr, v...)
	}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Sample returns the sample of the part being solved.
func (p *Puzzle) Sample() (sample, bool) {
	s, ok := p.samples[p.solver.Name]
	return s, ok && s.want != ""
}

type day struct {
	day   int
	parts []partSolver
}

func (d day) part(name string) (partSolver, bool) {
	for _, ps := range d.parts {
		if ps.Part == name {
			return ps, true
		}
	}
	return partSolver{}, false
}

type partSolver struct {
	Part string
	Name string
}

// fn returns the method of slvr that solves ps. It is looked up on every
// call so that it sees the Puzzle currently set on slvr.
func (ps partSolver) fn(slvr any) func() any {
	m := reflect.ValueOf(slvr).MethodByName(ps.Name)
	f, ok := m.Interface().(func() any)
	if !ok {
		log.Fatalf("%s: got %v; want func() any", ps.Name, m.Type())
	}
	return f
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags]\n       %s -day N <part> <input-file> [args...]\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
}

var initFlags = sync.OnceFunc(flag.Parse)

func setPuzzle(slvr any, p *Puzzle) {
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
}

// solve runs the part p is set up for, turning a panic in the solver into
// an error.
func solve(slvr any, p *Puzzle) (got any, err error) {
	setPuzzle(slvr, p)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return p.solver.fn(slvr)(), nil
}

func runDay(slvr any, cfg Config, year int, day day, samples map[string]sample) {
	p := Puzzle{
		year:    year,
		day:     day,
		cfg:     cfg,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	setPuzzle(slvr, &p)
	for _, ps := range day.parts {
		p.solver = ps
		p.input = nil
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			sample, hasSample := p.Sample()
			if sm && !hasSample {
				fmt.Printf("part %s sample: none\n", ps.Part)
				continue
			}
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn(slvr)()
			if sm {
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

var errUsage = errors.New("usage: -day N <part> <input-file> [args...]")

// solveFile solves one part of one day for the input in a local file and
// returns the answer. args holds the part, the file name and any extra
// numeric arguments.
func solveFile(slvr any, year, dayNum int, days map[int]day, args []string) (string, error) {
	if dayNum == -1 || len(args) < 2 {
		return "", errUsage
	}
	d, ok := days[dayNum]
	if !ok {
		return "", fmt.Errorf("no day %d", dayNum)
	}
	ps, ok := d.part(args[0])
	if !ok {
		return "", fmt.Errorf("day %d has no part %q", d.day, args[0])
	}
	var extra []int
	for _, a := range args[2:] {
		n, err := strconv.Atoi(a)
		if err != nil {
			return "", fmt.Errorf("bad argument %q: %w", a, err)
		}
		extra = append(extra, n)
	}
	input, err := os.ReadFile(args[1])
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	p := &Puzzle{
		year:   year,
		day:    d,
		solver: ps,
		input:  input,
		args:   extra,
	}
	t0 := time.Now()
	got, err := solve(slvr, p)
	if err != nil {
		return "", fmt.Errorf("day %d part %s: %w", d.day, ps.Part, err)
	}
	p.Debug("took", time.Since(t0).Round(time.Microsecond))
	return fmt.Sprint(got), nil
}

// Run solves the puzzles of the given year with the D{day}p{part} methods of
// slvr, a pointer to a struct embedding *Puzzle. Samples are read from the
// doc comments of the Go files in src.
//
// Without arguments every selected part is checked against its sample and
// then solved for the real input. With arguments, a single part is solved
// for a local input file:
//
//	-day N <part> <input-file> [args...]
func Run(year int, src fs.FS, slvr any) {
	initFlags()
	days := extractMethods(slvr)

	if flag.NArg() > 0 {
		got, err := solveFile(slvr, year, flagCurDay, days, flag.Args())
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(got)
		return
	}

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	samples := extractSamples(src)

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, cfg, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, cfg, year, days[day], samples)
		fmt.Println()
	}
}

// SampleResult is the outcome of solving one sample.
type SampleResult struct {
	Name string // method name, like D17p2
	Got  string
	Want string
	Err  error // the solver panicked
}

// RunSamples solves every sample found in src with the methods of slvr,
// without reading flags or touching the network.
func RunSamples(src fs.FS, slvr any) []SampleResult {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	var out []SampleResult
	for _, dn := range dayNums {
		d := days[dn]
		for _, ps := range d.parts {
			p := &Puzzle{
				day:        d,
				SampleMode: true,
				solver:     ps,
				samples:    samples,
			}
			s, ok := p.Sample()
			if !ok {
				continue
			}
			got, err := solve(slvr, p)
			out = append(out, SampleResult{
				Name: ps.Name,
				Got:  fmt.Sprint(got),
				Want: s.want,
				Err:  err,
			})
		}
	}
	return out
}

func (c Config) request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.AddCookie(&http.Cookie{Name: "session", Value: MustGet(c.session())})
	return req
}

func doRequest(req *http.Request) *http.Response {
	res := MustGet(http.DefaultClient.Do(req))
	if res.StatusCode != 200 {
		log.Fatalf("bad status fetching %s: %v", req.URL, res.Status)
	}
	return res
}

// fileOrFetch returns the contents of filename under the input directory,
// fetching it from path on the puzzle site when it is missing.
func (c Config) fileOrFetch(filename, path string) []byte {
	filename = filepath.Join(c.InputDir, filename)
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}

	body := c.fetch(c.BaseURL + path)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func (c Config) fetch(url string) []byte {
	res := doRequest(c.request("GET", url, nil))
	defer res.Body.Close()
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		panic(fmt.Sprintf("bad prefix: %q", s))
	}
	return s1
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}

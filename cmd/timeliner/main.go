// Loads spans into a timeline and answers point queries.
//
// Each input line is "start end [label...]", with blank lines and lines starting with # ignored.
// Spans overlapping one already loaded are reported and skipped.
//
// Example run:
// $ printf '0 10 breakfast\n10 20 standup\n15 30 lunch\n' | timeliner 5 10 25
// 2024-05-02T10:11:12+1000 WARN  main: line 3: [15, 30) overlaps an existing item: head with [10, 20)
// 5: [0, 10) breakfast
// 10: [10, 20) standup
// 25: none
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/anacrolix/envpprof"
	app "github.com/anacrolix/gostdapp"
	"github.com/anacrolix/log"
	"github.com/anacrolix/tagflag"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/cathiecode/timeliner"
)

var logger = log.Default.WithNames("main")

type position = int64

type labelledSpan struct {
	timeliner.Span[position]
	Label string
}

func (me labelledSpan) String() string {
	if me.Label == "" {
		return me.Span.String()
	}
	return me.Span.String() + " " + me.Label
}

type timeline = timeliner.Timeline[position, labelledSpan]

type cliFlags struct {
	File    string `help:"read spans from this file instead of stdin"`
	Backend string `help:"ordered map implementation: ajwerner, tidwall, google or anacrolix"`
	Debug   bool   `help:"log at debug level and dump rejected spans in full"`
	tagflag.StartPos
	Positions []string `arity:"*" help:"positions to look up once loading is done"`
}

var flags = cliFlags{
	Backend: timeliner.BackendAjwerner.String(),
}

func main() {
	tagflag.Parse(&flags)
	app.RunContext(mainErr)
}

func mainErr(ctx context.Context) error {
	defer envpprof.Stop()
	return run(ctx, flags, os.Stdin, os.Stdout)
}

func run(ctx context.Context, f cliFlags, stdin io.Reader, stdout io.Writer) error {
	positions, err := parsePositions[position](f.Positions, 64)
	if err != nil {
		return err
	}
	l := loader{
		logger: logger,
		debug:  f.Debug,
	}
	if f.Debug {
		l.logger = l.logger.FilterLevel(log.Debug)
	}
	cfg := timeliner.DefaultConfig()
	cfg.Logger = l.logger.WithNames("timeline")
	cfg.Backend, err = timeliner.ParseBackend(f.Backend)
	if err != nil {
		return err
	}
	r := stdin
	if f.File != "" {
		file, err := os.Open(f.File)
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
	}
	tl := timeliner.New[position, labelledSpan](cfg)
	if err := loadSpans(ctx, r, tl, l.logRejected); err != nil {
		return err
	}
	stats := tl.Stats()
	l.logger.Levelf(log.Debug, "loaded %v spans, rejected %v", stats.Inserts, stats.Rejections)
	return query(stdout, tl, positions)
}

type loader struct {
	logger log.Logger
	debug  bool
	// Line numbers of rejected spans.
	rejected []int
}

func (me *loader) logRejected(lineNum int, err error) {
	me.rejected = append(me.rejected, lineNum)
	me.logger.Levelf(log.Warning, "line %d: %v", lineNum, err)
	if !me.debug {
		return
	}
	if item, ok := timeliner.Rejected[position, labelledSpan](err); ok {
		me.logger.Levelf(log.Debug, "rejected span: %s", spew.Sdump(item))
	}
}

func parsePositions[T constraints.Signed](args []string, bitSize int) (ret []T, err error) {
	for _, a := range args {
		i64, err := strconv.ParseInt(a, 0, bitSize)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing position %q", a)
		}
		ret = append(ret, T(i64))
	}
	return
}

// Returns false for lines carrying no span.
func parseLine(line string) (s labelledSpan, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		err = errors.Errorf("expected start and end, got %q", line)
		return
	}
	for i := range 2 {
		s.Span[i], err = strconv.ParseInt(fields[i], 0, 64)
		if err != nil {
			return
		}
	}
	s.Label = strings.Join(fields[2:], " ")
	ok = true
	return
}

// Inserts every span read from r. Overlapping spans go to onReject and loading continues.
func loadSpans(ctx context.Context, r io.Reader, tl *timeline, onReject func(lineNum int, err error)) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNum++
		s, ok, err := parseLine(scanner.Text())
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNum)
		}
		if !ok {
			continue
		}
		if err := tl.Insert(s); err != nil {
			onReject(lineNum, err)
		}
	}
	return scanner.Err()
}

func query(w io.Writer, tl *timeline, positions []position) error {
	for _, p := range positions {
		var err error
		if s, ok := tl.Get(p); ok {
			_, err = fmt.Fprintf(w, "%v: %v\n", p, s)
		} else {
			_, err = fmt.Fprintf(w, "%v: none\n", p)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

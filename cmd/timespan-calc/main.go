// Command timespan-calc is an interactive calculator for duration values.
//
// Each command takes durations in the free-text form understood by the
// timespan parser, e.g. "1.5h 20 min" or "2 wk 6 d". Binary commands
// separate their operands with "|".
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/timespan-project/timespan-go/pkg/timespan"
)

func main() {
	vocabPath := flag.String("vocab", "", "path to a YAML vocabulary override")
	flag.Parse()

	vocab := timespan.DefaultVocabulary()
	if *vocabPath != "" {
		v, err := timespan.LoadVocabulary(*vocabPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "timespan-calc: %v\n", err)
			os.Exit(1)
		}
		vocab = v
	}

	c := newCalc(vocab)
	if err := c.run(); err != nil {
		fmt.Fprintf(os.Stderr, "timespan-calc: %v\n", err)
		os.Exit(1)
	}
}

// calc holds the shell state.
type calc struct {
	parser    *timespan.Parser
	formatter *timespan.Formatter
	rl        *readline.Instance
}

func newCalc(v timespan.Vocabulary) *calc {
	return &calc{
		parser:    timespan.NewParser(v),
		formatter: timespan.NewFormatter(v),
	}
}

// run starts the interactive command loop.
func (c *calc) run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "span> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()
	c.rl = rl

	c.printHelp()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(rl.Stdout(), "Exiting...")
			return nil
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(input, " ")
		rest = strings.TrimSpace(rest)

		switch strings.ToLower(cmd) {
		case "help", "?":
			c.printHelp()

		case "show", "s":
			c.cmdShow(rest)

		case "fmt", "f":
			c.cmdFmt(rest)

		case "add", "+":
			c.cmdBinary(rest, "+")

		case "sub", "-":
			c.cmdBinary(rest, "-")

		case "mul", "*":
			c.cmdScale(rest, false)

		case "div", "/":
			c.cmdScale(rest, true)

		case "divmod":
			c.cmdDivMod(rest)

		case "cmp":
			c.cmdCmp(rest)

		case "at":
			c.cmdAt(rest)

		case "quit", "exit", "q":
			fmt.Fprintln(rl.Stdout(), "Exiting...")
			return nil

		default:
			fmt.Fprintf(rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (c *calc) out() io.Writer { return c.rl.Stdout() }

// parseSpan parses one duration, reporting errors to the shell.
func (c *calc) parseSpan(text string) (timespan.Span, bool) {
	span, err := c.parser.Parse(text)
	if err != nil {
		fmt.Fprintf(c.out(), "Error: %v\n", err)
		return timespan.Span{}, false
	}
	return span, true
}

// parsePair splits "a | b" and parses both sides.
func (c *calc) parsePair(rest string) (timespan.Span, timespan.Span, bool) {
	left, right, found := strings.Cut(rest, "|")
	if !found {
		fmt.Fprintln(c.out(), "Usage: <duration> | <duration>")
		return timespan.Span{}, timespan.Span{}, false
	}
	a, ok := c.parseSpan(left)
	if !ok {
		return timespan.Span{}, timespan.Span{}, false
	}
	b, ok := c.parseSpan(right)
	if !ok {
		return timespan.Span{}, timespan.Span{}, false
	}
	return a, b, true
}

func (c *calc) show(s timespan.Span) {
	fmt.Fprintf(c.out(), "  %s\n", c.formatter.Render(s, timespan.RenderOptions{}))
	fmt.Fprintf(c.out(), "  %s\n", c.formatter.Render(s, timespan.RenderOptions{HideZeros: true, Symbols: true}))
	fmt.Fprintf(c.out(), "  total: %d µs\n", s.TotalMicroseconds())
}

func (c *calc) cmdShow(rest string) {
	if rest == "" {
		fmt.Fprintln(c.out(), "Usage: show <duration>")
		return
	}
	if span, ok := c.parseSpan(rest); ok {
		c.show(span)
	}
}

// cmdFmt applies a directive template: fmt <template> | <duration>.
func (c *calc) cmdFmt(rest string) {
	template, text, found := strings.Cut(rest, "|")
	if !found {
		fmt.Fprintln(c.out(), "Usage: fmt <template> | <duration>")
		return
	}
	span, ok := c.parseSpan(text)
	if !ok {
		return
	}
	formatted, err := c.formatter.Format(span, strings.TrimSpace(template))
	if err != nil {
		fmt.Fprintf(c.out(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out(), "  %s\n", formatted)
}

func (c *calc) cmdBinary(rest, op string) {
	a, b, ok := c.parsePair(rest)
	if !ok {
		return
	}
	if op == "+" {
		c.show(a.Add(b))
	} else {
		c.show(a.Sub(b))
	}
}

// cmdScale multiplies or divides: mul <duration> | <number>. Division by
// another duration prints the dimensionless ratio instead.
func (c *calc) cmdScale(rest string, invert bool) {
	left, right, found := strings.Cut(rest, "|")
	if !found {
		fmt.Fprintln(c.out(), "Usage: mul|div <duration> | <number or duration>")
		return
	}
	span, ok := c.parseSpan(left)
	if !ok {
		return
	}
	right = strings.TrimSpace(right)

	if scalar, err := strconv.ParseFloat(right, 64); err == nil {
		var result timespan.Span
		if invert {
			result, err = span.Div(scalar)
		} else {
			result, err = span.Mul(scalar)
		}
		if err != nil {
			fmt.Fprintf(c.out(), "Error: %v\n", err)
			return
		}
		c.show(result)
		return
	}

	if !invert {
		fmt.Fprintln(c.out(), "Usage: mul <duration> | <number>")
		return
	}
	divisor, ok := c.parseSpan(right)
	if !ok {
		return
	}
	ratio, err := span.Ratio(divisor)
	if err != nil {
		fmt.Fprintf(c.out(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out(), "  ratio: %g\n", ratio)
}

func (c *calc) cmdDivMod(rest string) {
	a, b, ok := c.parsePair(rest)
	if !ok {
		return
	}
	q, r, err := a.DivMod(b)
	if err != nil {
		fmt.Fprintf(c.out(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out(), "  quotient: %d\n", q)
	fmt.Fprintf(c.out(), "  remainder: %s\n", c.formatter.Render(r, timespan.RenderOptions{HideZeros: true, Symbols: true}))
}

func (c *calc) cmdCmp(rest string) {
	a, b, ok := c.parsePair(rest)
	if !ok {
		return
	}
	switch a.Cmp(b) {
	case -1:
		fmt.Fprintln(c.out(), "  a < b")
	case 1:
		fmt.Fprintln(c.out(), "  a > b")
	default:
		fmt.Fprintln(c.out(), "  a == b")
	}
}

// cmdAt adds a duration to the current time.
func (c *calc) cmdAt(rest string) {
	span, ok := c.parseSpan(rest)
	if !ok {
		return
	}
	fmt.Fprintf(c.out(), "  %s\n", span.AddTo(time.Now()).Format(time.RFC3339))
}

func (c *calc) printHelp() {
	help := `
Timespan Calculator Commands:
  Inspection:
    show <duration>                 - Canonical decomposition and total
    fmt <template> | <duration>     - Apply a %-directive template
    cmp <duration> | <duration>     - Compare two durations

  Arithmetic:
    add <duration> | <duration>     - Sum
    sub <duration> | <duration>     - Difference
    mul <duration> | <number>       - Scale
    div <duration> | <number>       - Divide by a scalar
    div <duration> | <duration>     - Dimensionless ratio
    divmod <duration> | <duration>  - Floor quotient and remainder
    at <duration>                   - Current time plus the duration

  General:
    help                            - Show this help
    quit                            - Exit

  Duration Format:
    free text with number-unit pairs, e.g. "1.5h 20 min" or "2 wk 6 d"`
	fmt.Fprintln(c.out(), help)
}

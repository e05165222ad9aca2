package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/AlenaMolokova/cardcheck/internal/models"
)

// maxLineBytes caps one input line; longer lines are drained and reported as too long.
const maxLineBytes = 4 << 10

type CardService interface {
	ValidateCard(rawInput string) models.CardReport
	SupportedBrands() []string
}

// Shell is the interactive validate-another loop of the console binary.
type Shell struct {
	cards CardService
	in    *bufio.Reader
	out   io.Writer
}

type inputLine struct {
	text    string
	tooLong bool
}

func New(cards CardService, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		cards: cards,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

// Run blocks until the user declines another round, input ends or ctx is cancelled.
// Cancellation is observed while waiting for input too.
func (s *Shell) Run(ctx context.Context) error {
	s.printBanner()

	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make(chan inputLine)
	errc := make(chan error, 1)
	go s.readLines(ctx, lines, errc)

	for {
		fmt.Fprint(s.out, "Enter card number: ")
		line, err := s.readLine(ctx, lines, errc)
		if err != nil {
			return s.finish(err)
		}

		switch {
		case line.tooLong:
			fmt.Fprint(s.out, "\nError: input is too long!\n\n")
		case strings.TrimSpace(line.text) == "":
			fmt.Fprint(s.out, "\nError: you must enter a card number!\n\n")
		default:
			s.printReport(s.cards.ValidateCard(line.text))
		}

		fmt.Fprint(s.out, "Validate another card? (y/n): ")
		answer, err := s.readLine(ctx, lines, errc)
		if err != nil {
			return s.finish(err)
		}
		if answer.tooLong || !isYes(answer.text) {
			fmt.Fprint(s.out, "\nGoodbye!\n")
			return nil
		}
	}
}

func (s *Shell) finish(err error) error {
	fmt.Fprintln(s.out)
	if err == io.EOF {
		return nil
	}
	return err
}

func (s *Shell) readLine(ctx context.Context, lines <-chan inputLine, errc <-chan error) (inputLine, error) {
	if err := ctx.Err(); err != nil {
		return inputLine{}, err
	}
	select {
	case <-ctx.Done():
		return inputLine{}, ctx.Err()
	case line, ok := <-lines:
		if !ok {
			return inputLine{}, <-errc
		}
		return line, nil
	}
}

// readLines feeds lines until input ends or ctx is cancelled, then closes lines
// after putting the terminal read error (io.EOF at end of input) on errc.
func (s *Shell) readLines(ctx context.Context, lines chan<- inputLine, errc chan<- error) {
	defer close(lines)
	for {
		line, err := s.nextLine()
		if err != nil {
			errc <- err
			return
		}
		select {
		case lines <- line:
		case <-ctx.Done():
			errc <- ctx.Err()
			return
		}
	}
}

func (s *Shell) nextLine() (inputLine, error) {
	var (
		buf  []byte
		line inputLine
	)
	for {
		chunk, isPrefix, err := s.in.ReadLine()
		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				break
			}
			return inputLine{}, err
		}
		if !line.tooLong {
			if len(buf)+len(chunk) > maxLineBytes {
				line.tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	line.text = string(buf)
	return line, nil
}

func (s *Shell) printBanner() {
	brands := s.cards.SupportedBrands()
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "==================================================")
	fmt.Fprintln(s.out, "              CREDIT CARD VALIDATOR")
	fmt.Fprintf(s.out, "   Luhn algorithm and %d supported brands\n", len(brands))
	fmt.Fprintln(s.out, "==================================================")
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "Supported brands: %s\n\n", strings.Join(brands, " | "))
}

func (s *Shell) printReport(r models.CardReport) {
	switch {
	case r.Valid():
		fmt.Fprintln(s.out, "\nVALID CARD")
		fmt.Fprintf(s.out, "   Number (formatted): %s\n", r.Formatted)
		fmt.Fprintf(s.out, "   Number (masked): %s\n", r.Masked)
		fmt.Fprintf(s.out, "   Brand: %s\n", r.Brand)
		fmt.Fprint(s.out, "   Luhn check: passed\n\n")
	case r.HasBrand():
		fmt.Fprintln(s.out, "\nINVALID CARD")
		fmt.Fprintf(s.out, "   Number (masked): %s\n", r.Masked)
		fmt.Fprintf(s.out, "   Identified brand: %s\n", r.Brand)
		fmt.Fprintf(s.out, "   Error: %s\n\n", r.ErrorMessage)
	default:
		fmt.Fprintln(s.out, "\nERROR")
		fmt.Fprintf(s.out, "   %s\n\n", r.ErrorMessage)
	}
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

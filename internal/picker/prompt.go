package picker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// Prompt returns a Picker that asks for a directory on out and reads one
// line from in. An empty answer, end of input or a cancelled context
// cancels the pick.
func Prompt(in io.Reader, out io.Writer) Picker {
	return Func(func(ctx context.Context) (Root, error) {
		fmt.Fprint(out, "Directory to scan (empty to cancel): ")

		type answer struct {
			line string
			err  error
		}
		ch := make(chan answer, 1)
		go func() {
			line, err := bufio.NewReader(in).ReadString('\n')
			ch <- answer{line, err}
		}()

		var a answer
		select {
		case <-ctx.Done():
			return Root{}, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		case a = <-ch:
		}

		line := strings.TrimSpace(a.line)
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return Root{}, fmt.Errorf("picker: reading answer: %w", a.err)
		}
		if line == "" {
			return Root{}, ErrCancelled
		}
		return Resolve(line)
	})
}

// Interactive returns a Picker backed by a terminal form. The answer is
// validated as it is typed; aborting the form cancels the pick.
func Interactive(initial string) Picker {
	return Func(func(ctx context.Context) (Root, error) {
		dir := initial
		input := huh.NewInput().
			Title("Directory to scan").
			Placeholder(".").
			Value(&dir).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return nil
				}
				_, err := Resolve(s)
				return err
			})

		if err := huh.NewForm(huh.NewGroup(input)).RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) || ctx.Err() != nil {
				return Root{}, ErrCancelled
			}
			return Root{}, fmt.Errorf("picker: prompt failed: %w", err)
		}
		if strings.TrimSpace(dir) == "" {
			dir = "."
		}
		return Resolve(dir)
	})
}

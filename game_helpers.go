package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sheikhrachel/glife/model"
	"github.com/sheikhrachel/glife/render"
	"github.com/sheikhrachel/glife/utils"
)

// alertStyle marks warnings and errors on the terminal
var alertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

// errInvalidAnswer is returned when the confirmation prompt gets an unexpected reply
var errInvalidAnswer = errors.New("invalid input")

// confirmDiskUsage warns that an unbounded image run may fill the disk and asks whether
// to go on
func confirmDiskUsage(in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprintln(out, alertStyle.Render("WARNING:"), "Risk of generating too many images and overcharging the hard disk.")
	fmt.Fprint(out, "Do you want to continue? [Y/n]: ")

	var answer string
	if _, err := fmt.Fscan(in, &answer); err != nil {
		return false, errors.Wrap(errInvalidAnswer, "no answer given")
	}

	switch strings.ToLower(answer) {
	case "y", "yes", "s":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, errors.Wrapf(errInvalidAnswer, "%q", answer)
	}
}

// observers fans a generation out to several observers in order
type observers []model.Observer

func (o observers) Observe(generation int, b *model.Board) error {
	for _, obs := range o {
		if err := obs.Observe(generation, b); err != nil {
			return err
		}
	}
	return nil
}

// newObserver wires the per-generation output: terminal text, or PPM frames when image
// generation is on. The returned close func flushes pending output.
func newObserver(
	ctx context.Context,
	config utils.Config,
	aliveChar byte,
	out io.Writer,
	stats *utils.Stats,
	logger *zap.Logger,
) (model.Observer, func() error, error) {
	track := model.ObserverFunc(func(generation int, b *model.Board) error {
		stats.Update(generation, b.Population())
		return nil
	})

	if !config.Image.GenerateImage {
		renderer := &model.TerminalRenderer{Out: out, AliveChar: aliveChar}
		return observers{track, renderer}, func() error { return nil }, nil
	}

	style, err := config.Style()
	if err != nil {
		return nil, nil, err
	}
	fmt.Fprintln(out, "Generating images...")
	writer := render.NewFrameWriter(ctx, config.Image.Path, style, logger)
	closeWriter := func() error {
		err := writer.Close()
		logger.Debug("frames flushed", zap.Int64("written", writer.Written()))
		return err
	}
	return observers{track, writer}, closeWriter, nil
}

// reportResult prints why the run stopped
func reportResult(out io.Writer, result model.Result) {
	switch result.Reason {
	case model.ReasonCycle:
		fmt.Fprintf(out, "Generation %d found match with generation %d\n", result.Generation, result.MatchedGeneration)
	case model.ReasonLimitReached:
		fmt.Fprintln(out, "Reached limit of generations")
	case model.ReasonExtinct:
		fmt.Fprintln(out, "The population has been extinguished")
	case model.ReasonInterrupted:
		fmt.Fprintf(out, "Simulation interrupted at generation %d\n", result.Generation)
	}
}

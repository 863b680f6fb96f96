package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hekt/recognition-sdk/internal/file"
	"github.com/hekt/recognition-sdk/internal/logger"
	"github.com/hekt/recognition-sdk/pkg/errs"
	"github.com/hekt/recognition-sdk/pkg/factory"
	"github.com/hekt/recognition-sdk/pkg/recognizer"
)

func newRecognizeCommand(o *options) *cli.Command {
	return &cli.Command{
		Name:  "recognize",
		Usage: "recognize a single utterance",
		Flags: []cli.Flag{
			configFlag,
			debugFlag,
			logFileFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(cCtx *cli.Context) error {
			closeLogger, err := setLogger(cCtx)
			if err != nil {
				return err
			}
			defer closeLogger()

			r, err := createRecognizer(cCtx, o)
			if err != nil {
				return err
			}
			defer closeRecognizer(r)

			r.Enable()
			a, err := r.Recognize(cCtx.Context)
			if err != nil {
				return fmt.Errorf("failed to start recognition: %w", err)
			}
			v, err := a.Await(cCtx.Context)
			if err != nil {
				return fmt.Errorf("failed to recognize: %w", err)
			}

			p, ok := v.(recognizer.Payload)
			if !ok {
				return fmt.Errorf("unexpected result type: %T", v)
			}
			if p.PayloadReason() == recognizer.ReasonNoMatch {
				fmt.Fprintln(cCtx.App.ErrWriter, "no match")
				return nil
			}

			data, err := encode(p, cCtx.String(formatFlag.Name))
			if err != nil {
				return err
			}
			w, _ := resultWriters(cCtx)
			if _, err := w.Write(data); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}
			return nil
		},
	}
}

func newContinuousCommand(o *options) *cli.Command {
	return &cli.Command{
		Name:  "continuous",
		Usage: "recognize until the audio ends or the process is interrupted",
		Flags: []cli.Flag{
			configFlag,
			debugFlag,
			logFileFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(cCtx *cli.Context) error {
			closeLogger, err := setLogger(cCtx)
			if err != nil {
				return err
			}
			defer closeLogger()

			r, err := createRecognizer(cCtx, o)
			if err != nil {
				return err
			}
			defer closeRecognizer(r)

			r.Enable()
			started, err := r.StartContinuous(cCtx.Context)
			if err != nil {
				return fmt.Errorf("failed to start session: %w", err)
			}
			if _, err := started.Await(cCtx.Context); err != nil {
				return fmt.Errorf("failed to start session: %w", err)
			}

			stopAfter := context.AfterFunc(cCtx.Context, func() {
				slog.Debug("App: interrupted, stopping session")
				if _, err := r.StopContinuous(context.Background()); err != nil {
					slog.Error(fmt.Sprintf("failed to stop session: %v", err))
				}
			})
			defer stopAfter()

			resultWriter, interimWriter := resultWriters(cCtx)
			eventCh := make(chan recognizer.Payload)
			writer := NewResultWriter(eventCh, resultWriter, interimWriter, cCtx.String(formatFlag.Name))

			// the session drains after an interrupt, so the workers outlive cCtx
			eg, ctx := errgroup.WithContext(context.WithoutCancel(cCtx.Context))
			eg.Go(func() error {
				defer close(eventCh)
				return pumpEvents(ctx, r, eventCh)
			})
			eg.Go(func() error {
				return writer.Start(ctx)
			})
			werr := eg.Wait()

			stopped, err := r.StopContinuous(context.Background())
			if err != nil {
				return errors.Join(werr, fmt.Errorf("failed to stop session: %w", err))
			}
			if _, err := stopped.Await(context.Background()); err != nil {
				return errors.Join(werr, fmt.Errorf("failed to stop session: %w", err))
			}
			return werr
		},
	}
}

func newCheckConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "check-config",
		Usage: "validate a recognizer config",
		Flags: []cli.Flag{
			configFlag,
		},
		Action: func(cCtx *cli.Context) error {
			cfg, err := factory.LoadConfig(cCtx.String(configFlag.Name))
			if err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			fmt.Fprintf(cCtx.App.Writer, "config is valid: kind=%s backend=%s\n", cfg.Kind, cfg.Backend)
			return nil
		},
	}
}

// pumpEvents forwards session events until the session is drained.
func pumpEvents(ctx context.Context, r recognizer.Recognizer, eventCh chan<- recognizer.Payload) error {
	for {
		e, err := r.PollEvent(ctx)
		if errors.Is(err, errs.ErrNotFound) {
			slog.Debug("App: session drained")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to poll event: %w", err)
		}

		p, ok := e.(recognizer.Payload)
		if !ok {
			return fmt.Errorf("unexpected event type: %T", e)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case eventCh <- p:
		}
	}
}

func createRecognizer(cCtx *cli.Context, o *options) (recognizer.Recognizer, error) {
	cfg, err := factory.LoadConfig(cCtx.String(configFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	opts := []factory.Option{factory.WithStdin(cCtx.App.Reader)}
	if o.clientProvider != nil {
		opts = append(opts, factory.WithClientProvider(o.clientProvider))
	}
	if o.decoderProvider != nil {
		opts = append(opts, factory.WithDecoderProvider(o.decoderProvider))
	}
	f, err := factory.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create factory: %w", err)
	}

	r, err := f.Create(cCtx.Context, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create recognizer: %w", err)
	}
	return r, nil
}

func closeRecognizer(r recognizer.Recognizer) {
	if err := r.Close(); err != nil {
		slog.Error(fmt.Sprintf("failed to close recognizer: %v", err))
	}
}

// resultWriters writes results to --output when set, interim transcripts
// always go to the terminal.
func resultWriters(cCtx *cli.Context) (result io.Writer, interim io.Writer) {
	interim = &InterimWriter{Writer: cCtx.App.ErrWriter}
	if path := cCtx.String(outputFlag.Name); path != "" {
		return &LineWriter{Writer: file.NewAppendWriter(path, 0o644)}, interim
	}
	return &LineWriter{Writer: cCtx.App.Writer, ClearLine: true}, interim
}

func setLogger(cCtx *cli.Context) (func(), error) {
	if !cCtx.Bool(debugFlag.Name) {
		return func() {}, nil
	}

	path := cCtx.String(logFileFlag.Name)
	if path == "" {
		path = fmt.Sprintf("output/log-%d.log", time.Now().Unix())
	}
	l, closer, err := logger.NewFileLogger(path, slog.LevelDebug)
	if err != nil {
		return nil, fmt.Errorf("failed to set logger: %w", err)
	}

	prev := slog.Default()
	slog.SetDefault(l)
	return func() {
		slog.SetDefault(prev)
		if err := closer.Close(); err != nil {
			slog.Error(fmt.Sprintf("failed to close log file: %v", err))
		}
	}, nil
}

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nioark/mentions/internal/directory"
	"github.com/nioark/mentions/internal/engine"
	"github.com/nioark/mentions/internal/highlight"
)

const sessionHelp = `Commands, one per line:
  text <caret> <text>   replace the text and set the caret
  caret <n>             move the caret
  up, down              move the selected suggestion
  commit                commit the selected suggestion
  remove [delete]       remove the mention at the caret, optionally its text
  export                print the mentions as JSON
  show                  print the highlighted text
  quit                  stop reading commands`

func newSessionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Drive an editing session from standard input",
		Long:  "Drive an editing session from standard input.\n\n" + sessionHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			d := &driver{
				out:   cmd.OutOrStdout(),
				theme: highlight.DefaultTheme(),
			}
			d.session = engine.New(e.dir,
				engine.WithTrigger(e.cfg.TriggerRune()),
				engine.WithLogger(e.logger),
				engine.WithDiffTimeout(e.cfg.DiffTimeout),
				engine.WithObserver(d.observe),
			)

			var reloads <-chan *directory.Directory
			if e.cfg.Watch && e.cfg.Directory != "" {
				reloads = e.watch(ctx)
			}
			return d.run(cmd.InOrStdin(), reloads)
		},
	}
}

// watch reloads the directory in the background. New directories are
// delivered on the returned channel, newest only.
func (e *env) watch(ctx context.Context) <-chan *directory.Directory {
	ch := make(chan *directory.Directory, 1)
	go func() {
		err := directory.Watch(ctx, e.cfg.Directory, func(dir *directory.Directory, err error) {
			if err != nil {
				e.logger.Warn("directory reload failed", "path", e.cfg.Directory, "err", err)
				return
			}
			// Drop a pending directory nobody picked up yet.
			select {
			case <-ch:
			default:
			}
			ch <- dir
			e.logger.Info("directory reloaded", "path", e.cfg.Directory, "entries", dir.Len())
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			e.logger.Error("directory watcher stopped", "err", err)
		}
	}()
	return ch
}

// driver executes session commands.
type driver struct {
	session *engine.Session
	out     io.Writer
	theme   *highlight.Theme
}

func (d *driver) run(in io.Reader, reloads <-chan *directory.Directory) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		// Directory reloads are installed between commands only.
		select {
		case dir := <-reloads:
			d.session.SetDirectory(dir)
		default:
		}

		line := sc.Text()
		if strings.TrimSpace(line) == "quit" {
			return nil
		}
		if err := d.exec(line); err != nil {
			fmt.Fprintf(d.out, "error: %v\n", err)
		}
	}
	return sc.Err()
}

func (d *driver) exec(line string) error {
	cmd, rest, _ := strings.Cut(strings.TrimLeft(line, " "), " ")
	switch cmd {
	case "":
		return nil
	case "text":
		caretArg, s, _ := strings.Cut(rest, " ")
		caret, err := strconv.Atoi(caretArg)
		if err != nil {
			return fmt.Errorf("text: bad caret %q", caretArg)
		}
		d.print(d.session.Update(s, caret))
	case "caret":
		caret, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return fmt.Errorf("caret: bad offset %q", rest)
		}
		d.print(d.session.MoveCaret(caret))
	case "up":
		d.print(d.session.MoveSelection(-1))
	case "down":
		d.print(d.session.MoveSelection(1))
	case "commit":
		snap, err := d.session.Commit()
		if err != nil {
			return err
		}
		d.print(snap)
	case "remove":
		snap, err := d.session.Remove(strings.TrimSpace(rest) == "delete")
		if err != nil {
			return err
		}
		d.print(snap)
	case "export":
		doc, err := d.session.ExportJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(d.out, doc)
	case "show":
		fmt.Fprintln(d.out, d.theme.Render(d.session.Highlight()))
		d.print(d.session.Snapshot())
	case "help":
		fmt.Fprintln(d.out, sessionHelp)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (d *driver) print(snap engine.Snapshot) {
	fmt.Fprintf(d.out, "%s caret=%d text=%q\n", snap.Phase, snap.Caret, snap.Text)
	for _, m := range snap.Mentions {
		fmt.Fprintf(d.out, "  mention %s\n", m)
	}
	if snap.Phase == engine.Suggesting {
		printSuggestions(d.out, snap.Suggestions)
	}
}

func (d *driver) observe(ev engine.Event) {
	fmt.Fprintf(d.out, "event %s\n", ev)
}

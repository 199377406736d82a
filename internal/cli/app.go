package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/useraccounts/internal/accounts"
	"github.com/dmitrijs2005/useraccounts/internal/logging"
	"github.com/dmitrijs2005/useraccounts/internal/models"
)

type App struct {
	service *accounts.Service
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	// secretsFromTerminal switches password prompts to no-echo input.
	secretsFromTerminal bool

	// lastDeleted is kept so "undo" can put it back.
	lastDeleted *models.User
}

// NewApp builds an App reading commands from in and writing to out. When in
// is a terminal, passwords are read without echo.
func NewApp(service *accounts.Service, logger logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		service: service,
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     out,
	}
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		a.secretsFromTerminal = true
	}
	return a
}

// Run prints a greeting and serves commands until the user exits, input
// ends, ctx is cancelled, or a termination signal arrives.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.initSignalHandler(cancel)

	a.println("Welcome to the users CLI (type 'help' for commands)")

	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, a, a.reader)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		a.println("Bye!")
	}
}

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		signal.Stop(sigs)
		cancelFunc()
	}()
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) prompt(text string) (string, error) {
	return GetSimpleText(a.reader, text, a.out)
}

func (a *App) promptSecret(text string) (string, error) {
	if a.secretsFromTerminal {
		return GetPassword(text, a.out)
	}
	return a.prompt(text)
}

// resolve turns a command argument into a user id, prompting when it is empty.
func (a *App) resolve(arg, promptText string) (int64, error) {
	if arg == "" {
		var err error
		if arg, err = a.prompt(promptText); err != nil {
			return 0, err
		}
	}
	ref, err := ParseUserRef(arg)
	if err != nil {
		a.println("Not a user id or reference:", arg)
		return 0, err
	}
	return ref.ID, nil
}

// fail reports err to the user and the log, and returns it.
func (a *App) fail(ctx context.Context, userMsg string, err error) error {
	a.println(userMsg)
	a.logger.Warn(ctx, userMsg, "error", err)
	return err
}

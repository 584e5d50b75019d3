package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"walletportal/internal/domain/entity"
	domainerrors "walletportal/internal/domain/errors"
	"walletportal/internal/errors"
	"walletportal/internal/infra/persistence/memory"
	"walletportal/internal/infra/qrcode"
	"walletportal/internal/usecase"
	"walletportal/internal/usecase/impl"

	"github.com/spf13/cobra"
)

// terminalSession is the single client session of a walletctl process.
const terminalSession = "walletctl"

// errQuit ends the interactive loop without an error.
var errQuit = errors.New("quit")

const menuHelp = `Commands:
  wallet                 show your wallet again
  users                  list the first page of users
  more                   load the next page of users
  refresh                reload the first page of users
  find <field> <value>   look up one user by email, address, phone, externalWalletAddress or id
  logout                 sign out and sign in again
  quit                   sign out and exit`

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in with an email code and browse interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			return a.runLogin(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// console reads one trimmed line per prompt.
type console struct {
	scanner *bufio.Scanner
	out     *printer
}

func (c *console) ask(label string) (string, error) {
	c.out.Prompt(label)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", errors.WithStack(err)
		}

		return "", errQuit
	}

	return strings.TrimSpace(c.scanner.Text()), nil
}

// runLogin keeps the token in memory only, so nothing survives the process.
func (a *app) runLogin(ctx context.Context, in io.Reader) error {
	sessions := impl.NewSessionService(a.cfg, a.provider, memory.NewTokenRepository(), qrcode.New(a.cfg), a.logger)
	con := &console{scanner: bufio.NewScanner(in), out: a.out}

	if _, err := sessions.Start(ctx, terminalSession); err != nil {
		return err
	}
	defer func() {
		// Logout never reaches the provider, so a cancelled ctx is fine here.
		if _, err := sessions.Logout(context.WithoutCancel(ctx), terminalSession); err != nil {
			a.logger.Warn("Failed to clear token on exit", "error", err)
		}
	}()

	for {
		if err := a.signIn(ctx, con, sessions.AuthFlow(terminalSession)); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}

			return err
		}

		if err := a.browse(ctx, con, sessions); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}

			return err
		}

		if _, err := sessions.Logout(ctx, terminalSession); err != nil {
			return err
		}
		a.out.Info("Signed out")
	}
}

// signIn walks the two-step form until a code is accepted.
func (a *app) signIn(ctx context.Context, con *console, flow usecase.AuthFlowUsecase) error {
	for {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		switch flow.State().Step {
		case entity.AuthStepInitiate:
			email, err := con.ask("Email")
			if err != nil {
				return err
			}
			if _, err := flow.SubmitEmail(ctx, email); err != nil {
				a.out.Failure(domainerrors.UserMessage(err))

				continue
			}
			a.out.Info("A verification code was sent to %s. Type 'back' to use another email.", email)

		case entity.AuthStepVerify:
			code, err := con.ask("Code")
			if err != nil {
				return err
			}
			if strings.EqualFold(code, "back") {
				flow.Back()

				continue
			}
			if _, err := flow.SubmitCode(ctx, code); err != nil {
				a.out.Failure(domainerrors.UserMessage(err))

				continue
			}
			a.out.Success("Signed in")

			return nil
		}
	}
}

// browse runs the signed-in menu. It returns nil when the user asks to log out.
func (a *app) browse(ctx context.Context, con *console, sessions usecase.SessionUsecase) error {
	viewer := sessions.WalletViewer(terminalSession)
	directory := sessions.UserDirectory(terminalSession)

	if err := a.showWallet(ctx, viewer); err != nil {
		return err
	}
	a.out.Info("Type 'help' for commands.")

	for {
		line, err := con.ask(">")
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "wallet":
			if _, err := sessions.SwitchView(ctx, terminalSession, entity.ViewWallet); err != nil {
				a.out.Failure(domainerrors.UserMessage(err))

				continue
			}
			if err := a.showWallet(ctx, viewer); err != nil {
				return err
			}
		case "users":
			if _, err := sessions.SwitchView(ctx, terminalSession, entity.ViewUsers); err != nil {
				a.out.Failure(domainerrors.UserMessage(err))

				continue
			}
			if err := a.showDirectory(directory.Activate(ctx)); err != nil {
				return err
			}
		case "more":
			if !directory.State().Pagination.HasMore {
				a.out.Info("No more users")

				continue
			}
			if err := a.showDirectory(directory.LoadMore(ctx)); err != nil {
				return err
			}
		case "refresh":
			if err := a.showDirectory(directory.Refresh(ctx)); err != nil {
				return err
			}
		case "find":
			if len(fields) < 3 {
				a.out.Failure("Usage: find <field> <value>")

				continue
			}
			if err := a.showSearch(directory.Search(ctx, entity.UserQueryField(fields[1]), strings.Join(fields[2:], " "))); err != nil {
				return err
			}
		case "help", "?":
			a.out.Info(menuHelp)
		case "logout":
			return nil
		case "quit", "exit":
			return errQuit
		default:
			a.out.Failure("Unknown command " + fields[0] + ", type 'help'")
		}
	}
}

func (a *app) showWallet(ctx context.Context, viewer usecase.WalletViewerUsecase) error {
	state, err := viewer.Activate(ctx)
	if err != nil {
		message := state.Error
		if message == "" {
			message = domainerrors.UserMessage(err)
		}
		a.out.Failure(message)
		if state.CanLogout {
			a.out.Info("Type 'logout' to sign in again.")
		}

		return nil
	}

	return a.out.Wallet(state.Wallet)
}

// showDirectory prints the held list. Provider failures are shown and the loop carries on.
func (a *app) showDirectory(state entity.DirectoryState, err error) error {
	if err != nil {
		a.out.Failure(domainerrors.UserMessage(err))
		if len(state.Wallets) == 0 {
			return nil
		}
	}

	return a.out.Directory(state)
}

func (a *app) showSearch(state entity.DirectoryState, err error) error {
	if err != nil {
		a.out.Failure(domainerrors.UserMessage(err))

		return nil
	}

	return a.out.Wallet(state.Result)
}

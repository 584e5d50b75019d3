package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	deliverycontext "walletportal/internal/delivery/context"
	"walletportal/internal/domain/entity"
	domainerrors "walletportal/internal/domain/errors"
	"walletportal/internal/domain/service"
	"walletportal/internal/usecase"

	"github.com/pkg/errors"
)

// userDirectory implements the UserDirectoryUsecase interface.
type userDirectory struct {
	provider service.WalletProvider
	pageSize int
	logger   *slog.Logger

	mu         sync.Mutex
	state      entity.DirectoryState
	generation uint64
}

// NewUserDirectory is the constructor for userDirectory.
func NewUserDirectory(provider service.WalletProvider, pageSize int, logger *slog.Logger) usecase.UserDirectoryUsecase {
	if pageSize <= 0 {
		pageSize = entity.DefaultPageSize
	}

	d := &userDirectory{
		provider: provider,
		pageSize: pageSize,
		logger:   logger,
	}
	d.state = d.initialState()

	return d
}

func (d *userDirectory) initialState() entity.DirectoryState {
	return entity.DirectoryState{
		Mode:        entity.DirectoryModeList,
		Wallets:     []entity.WalletInfo{},
		Pagination:  entity.Pagination{Page: entity.FirstPage, Limit: d.pageSize},
		SearchField: entity.QueryByEmail,
	}
}

func (d *userDirectory) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// snapshot copies the state so callers never share the wallets backing array. Must be called with mu held.
func (d *userDirectory) snapshot() entity.DirectoryState {
	s := d.state
	s.Wallets = slices.Clone(d.state.Wallets)

	return s
}

// begin marks a call in flight and must be called with mu held.
func (d *userDirectory) begin() uint64 {
	d.state.Error = ""
	d.state.Busy = true

	return d.generation
}

func (d *userDirectory) Activate(ctx context.Context) (entity.DirectoryState, error) {
	d.mu.Lock()
	if !d.state.Busy {
		d.state.Mode = entity.DirectoryModeList
	}
	d.mu.Unlock()

	return d.Refresh(ctx)
}

// Refresh refetches the first page, replacing the held wallets only on success.
func (d *userDirectory) Refresh(ctx context.Context) (entity.DirectoryState, error) {
	d.mu.Lock()
	if d.state.Busy {
		defer d.mu.Unlock()

		return d.snapshot(), domainerrors.ErrActionInFlight
	}
	gen := d.begin()
	d.mu.Unlock()

	page, err := d.provider.GetAllUsers(ctx, d.pageSize, entity.FirstPage)

	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.generation {
		return d.snapshot(), nil
	}
	d.state.Busy = false

	if err != nil {
		d.state.Error = domainerrors.UserMessage(err)
		d.log(ctx).Info("Directory fetch failed", slog.String("reason", err.Error()))

		return d.snapshot(), errors.WithStack(err)
	}

	d.state.Wallets = slices.Clone(page.Wallets)
	d.state.Pagination = page.Pagination

	return d.snapshot(), nil
}

// LoadMore appends the next page after the held wallets, without dedup or re-sorting.
func (d *userDirectory) LoadMore(ctx context.Context) (entity.DirectoryState, error) {
	d.mu.Lock()
	if d.state.Busy || !d.state.Pagination.HasMore {
		defer d.mu.Unlock()

		return d.snapshot(), nil
	}
	gen := d.begin()
	next := d.state.Pagination.NextPage()
	d.mu.Unlock()

	page, err := d.provider.GetAllUsers(ctx, d.pageSize, next)

	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.generation {
		return d.snapshot(), nil
	}
	d.state.Busy = false

	if err != nil {
		d.state.Error = domainerrors.UserMessage(err)
		d.log(ctx).Info("Directory page fetch failed", slog.Int("page", next), slog.String("reason", err.Error()))

		return d.snapshot(), errors.WithStack(err)
	}

	d.state.Wallets = append(d.state.Wallets, page.Wallets...)
	d.state.Pagination = page.Pagination

	return d.snapshot(), nil
}

// Search looks up a single wallet. An empty value or unknown field is reported without calling the provider.
func (d *userDirectory) Search(ctx context.Context, field entity.UserQueryField, value string) (entity.DirectoryState, error) {
	value = strings.TrimSpace(value)

	d.mu.Lock()
	if d.state.Busy {
		defer d.mu.Unlock()

		return d.snapshot(), domainerrors.ErrActionInFlight
	}
	d.state.Mode = entity.DirectoryModeSearch
	d.state.SearchField = field
	d.state.SearchValue = value

	if err := validateSearch(field, value); err != nil {
		defer d.mu.Unlock()
		d.state.Error = domainerrors.UserMessage(err)

		return d.snapshot(), err
	}
	gen := d.begin()
	d.mu.Unlock()

	wallet, err := d.provider.GetSingleUser(ctx, entity.NewUserQuery(field, value))

	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.generation {
		return d.snapshot(), nil
	}
	d.state.Busy = false

	if err != nil {
		d.state.Result = nil
		d.state.Error = domainerrors.UserMessage(err)
		d.log(ctx).Info("Directory search failed", slog.String("field", string(field)), slog.String("reason", err.Error()))

		return d.snapshot(), errors.WithStack(err)
	}

	d.state.Result = wallet

	return d.snapshot(), nil
}

// validateSearch rejects only what can never match. Value formats are the provider's call.
func validateSearch(field entity.UserQueryField, value string) error {
	if value == "" {
		return domainerrors.ErrEmptySearchQuery
	}
	if !field.IsValid() {
		return domainerrors.ErrUnknownSearchField
	}

	return nil
}

// SelectMode switches tabs. The caller activates list mode after entering it.
func (d *userDirectory) SelectMode(mode entity.DirectoryMode) (entity.DirectoryState, error) {
	if !mode.IsValid() {
		return d.State(), domainerrors.ErrValidationFailed.WithDetails("unknown directory mode")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.state.Mode = mode

	return d.snapshot(), nil
}

func (d *userDirectory) State() entity.DirectoryState {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.snapshot()
}

func (d *userDirectory) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	d.state = d.initialState()
}

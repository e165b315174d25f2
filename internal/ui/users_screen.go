package ui

import (
	"context"
	"weak"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/userlist/internal/dispatch"
	"github.com/ytget/userlist/internal/logging"
	"github.com/ytget/userlist/internal/model"
	"github.com/ytget/userlist/internal/observable"
	"github.com/ytget/userlist/internal/platform"
)

// UsersScreen shows the remote users as a single-column list. The rows live in
// an observable; every change of it schedules a list refresh on the UI context.
type UsersScreen struct {
	users        *observable.Observable[[]model.UserRow]
	title        *widget.Label
	list         *widget.List
	content      *fyne.Container
	fetcher      platform.UserFetcher
	dispatcher   dispatch.Dispatcher
	localization *Localization
	logger       logging.Logger
}

// ScreenOption configures a UsersScreen
type ScreenOption func(*UsersScreen)

// WithLocalization sets the text source for the screen
func WithLocalization(l *Localization) ScreenOption {
	return func(s *UsersScreen) {
		if l != nil {
			s.localization = l
		}
	}
}

// WithScreenLogger sets the diagnostic logger
func WithScreenLogger(logger logging.Logger) ScreenOption {
	return func(s *UsersScreen) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewUsersScreen creates the screen. Nothing is fetched until Activate.
func NewUsersScreen(fetcher platform.UserFetcher, dispatcher dispatch.Dispatcher, opts ...ScreenOption) *UsersScreen {
	s := &UsersScreen{
		users:        observable.New([]model.UserRow{}),
		fetcher:      fetcher,
		dispatcher:   dispatcher,
		localization: NewLocalization(),
		logger:       logging.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.list = widget.NewList(
		s.RowCount,
		s.createRow,
		s.updateRow,
	)
	s.title = widget.NewLabelWithStyle(s.localization.GetText(KeyUsersTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	s.content = container.NewBorder(s.title, nil, nil, nil, s.list)
	return s
}

// Content returns the object to place into a window
func (s *UsersScreen) Content() fyne.CanvasObject {
	return s.content
}

// Activate binds the list to the rows and starts the one-shot fetch. Call it
// once, on the UI goroutine.
func (s *UsersScreen) Activate(ctx context.Context) {
	s.users.Subscribe(s.onUsersChanged)
	s.fetchUsers(ctx)
}

// RowCount returns the number of rows, zero when unset
func (s *UsersScreen) RowCount() int {
	return len(s.users.Value())
}

// RowText returns the display text of row id, empty when out of range
func (s *UsersScreen) RowText(id int) string {
	rows := s.users.Value()
	if id < 0 || id >= len(rows) {
		return ""
	}
	return rows[id].DisplayText()
}

// onUsersChanged is the render trigger. It always goes through the dispatcher,
// even when called on the UI goroutine.
func (s *UsersScreen) onUsersChanged([]model.UserRow) {
	s.dispatcher.Do(s.render)
}

func (s *UsersScreen) render() {
	s.list.Refresh()
}

// fetchUsers runs the fetch in the background. The completion only holds a
// weak pointer to the screen and does nothing once the screen is gone.
func (s *UsersScreen) fetchUsers(ctx context.Context) {
	fetcher := s.fetcher
	ref := weak.Make(s)

	go func() {
		users, err := fetcher.FetchUsers(ctx)

		screen := ref.Value()
		if screen == nil {
			return
		}
		screen.completeFetch(users, err)
	}()
}

// completeFetch applies a fetch result. Failures leave the rows untouched.
func (s *UsersScreen) completeFetch(users []model.User, err error) {
	if err != nil {
		s.logger.Debugf("users fetch discarded: %v", err)
		return
	}

	rows := model.NewUserRows(users)
	s.logger.Debugf("users fetched: %d rows", len(rows))
	s.dispatcher.Do(func() {
		s.users.Set(rows)
	})
}

func (s *UsersScreen) createRow() fyne.CanvasObject {
	return widget.NewLabel(s.localization.GetText(KeyRowLoading))
}

func (s *UsersScreen) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	label, ok := obj.(*widget.Label)
	if !ok {
		s.logger.Warnf("unexpected row object %T", obj)
		return
	}
	label.SetText(s.RowText(id))
}

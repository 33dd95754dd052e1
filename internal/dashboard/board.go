package dashboard

import (
	"sync"

	"github.com/qepting91/blogreader/internal/domain"
)

// Board is a domain.View that keeps the latest screen state for the web pages.
type Board struct {
	mu         sync.RWMutex
	busy       bool
	items      []domain.DisplayItem
	errTitle   string
	errMessage string
	emptyText  string
	notice     string
}

// Snapshot is a point-in-time copy of the board.
type Snapshot struct {
	Busy         bool
	Items        []domain.DisplayItem
	ErrorTitle   string
	ErrorMessage string
	EmptyText    string
	Notice       string
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) SetBusyIndicator(visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.busy = visible
	if visible {
		b.notice = ""
		b.errTitle, b.errMessage = "", ""
	}
}

func (b *Board) RenderList(items []domain.DisplayItem) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append([]domain.DisplayItem(nil), items...)
	b.emptyText = ""
}

func (b *Board) ShowErrorDialog(title, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errTitle, b.errMessage = title, message
	b.items = nil
}

func (b *Board) SetEmptyStateText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.emptyText = text
}

func (b *Board) ShowNotice(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notice = text
}

func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Snapshot{
		Busy:         b.busy,
		Items:        append([]domain.DisplayItem(nil), b.items...),
		ErrorTitle:   b.errTitle,
		ErrorMessage: b.errMessage,
		EmptyText:    b.emptyText,
		Notice:       b.notice,
	}
}

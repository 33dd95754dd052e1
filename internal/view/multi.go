package view

import "github.com/qepting91/blogreader/internal/domain"

// Multi forwards every call to each view in order.
type Multi []domain.View

func (m Multi) SetBusyIndicator(visible bool) {
	for _, v := range m {
		v.SetBusyIndicator(visible)
	}
}

func (m Multi) RenderList(items []domain.DisplayItem) {
	for _, v := range m {
		v.RenderList(items)
	}
}

func (m Multi) ShowErrorDialog(title, message string) {
	for _, v := range m {
		v.ShowErrorDialog(title, message)
	}
}

func (m Multi) SetEmptyStateText(text string) {
	for _, v := range m {
		v.SetEmptyStateText(text)
	}
}

func (m Multi) ShowNotice(text string) {
	for _, v := range m {
		v.ShowNotice(text)
	}
}

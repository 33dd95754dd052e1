// Package view holds terminal implementations of the screen's UI surface.
package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/qepting91/blogreader/internal/domain"
)

// Console draws the screen as plain lines on an io.Writer.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) SetBusyIndicator(visible bool) {
	if visible {
		fmt.Fprintln(c.out, "Loading posts...")
	}
}

func (c *Console) RenderList(items []domain.DisplayItem) {
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	for i, it := range items {
		if it.Author == "" {
			fmt.Fprintf(tw, "%3d.\t%s\n", i+1, it.Title)
			continue
		}
		fmt.Fprintf(tw, "%3d.\t%s\t%s\n", i+1, it.Title, it.Author)
	}
	tw.Flush()
}

func (c *Console) ShowErrorDialog(title, message string) {
	width := max(len(title), len(message)) + 4
	border := "+" + strings.Repeat("-", width-2) + "+"
	fmt.Fprintln(c.out, border)
	fmt.Fprintf(c.out, "| %-*s |\n", width-4, title)
	fmt.Fprintf(c.out, "| %-*s |\n", width-4, message)
	fmt.Fprintln(c.out, border)
}

func (c *Console) SetEmptyStateText(text string) {
	fmt.Fprintln(c.out, text)
}

func (c *Console) ShowNotice(text string) {
	fmt.Fprintf(c.out, "! %s\n", text)
}

// ConsoleNavigator "opens" a post by printing its URL.
type ConsoleNavigator struct {
	Out io.Writer
}

func (n ConsoleNavigator) OpenPost(url string) error {
	_, err := fmt.Fprintf(n.Out, "Open: %s\n", url)
	return err
}

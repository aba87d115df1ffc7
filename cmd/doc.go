package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/ledgertools/beanreport/docs"
)

// PrintTopic renders an embedded documentation topic to w. An empty topic
// name means the readme.
func PrintTopic(w io.Writer, topic string) error {
	if topic == "" {
		topic = "readme"
	}
	content, err := docs.GetTopic(topic)
	if err != nil {
		return err
	}
	printMarkdown(w, content)
	return nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// source when the terminal renderer fails.
func printMarkdown(w io.Writer, source string) {
	out, err := glamour.Render(source, "auto")
	if err != nil {
		fmt.Fprintln(w, source)
		return
	}
	fmt.Fprint(w, out)
}

package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"
	"github.com/hqwei/folio/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show a page of the user manual" }
func (*topicCmd) Usage() string {
	return `folio topic [<topic>...]

  Shows the requested manual pages, the readme by default. Pass '*' to read
  the whole manual. Available topics: ` + strings.Join(docs.All(), ", ") + `
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}

	content, err := docs.Topics(names...)
	if err != nil {
		return fail("Error: %v (available topics: %s)", err, strings.Join(docs.All(), ", "))
	}
	printMarkdown(content)

	return subcommands.ExitSuccess
}

// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

const (
	ConfigLoadFailedId Id = iota + 1
	ScriptReadFailedId
	ScriptParseFailedId
	ManualPageNotFoundId
	UnsupportedFormatId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is Markdown guidance shown to the user.
	MarkdownMsg string

	// Issue is one catalog entry.
	Issue struct {
		id    Id
		mdMsg MarkdownMsg
	}
)

var (
	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

catls could not read or validate its configuration file.

## Configuration file locations (first match wins):
1. The file given with ` + "`--config`" + `
2. ` + "`$XDG_CONFIG_HOME/catls/config.cue`" + ` (usually ` + "`~/.config/catls/config.cue`" + `)
3. ` + "`./config.cue`" + `

## Things you can try:
- Write a fresh default file:
~~~
$ catls config init
~~~
- Check the file against the schema; every key is optional
- Override single values with environment variables such as ` + "`CATLS_UI_COLOR=never`" + `

## Example configuration:
~~~cue
ui: {
  color: "auto"
  verbose: false
}
cat: parallel_sort_threshold: 10000
ls: time_format: "Jan 02 15:04"
~~~`,
	}

	scriptReadFailedIssue = &Issue{
		id: ScriptReadFailedId,
		mdMsg: `
# Could not read the script!

` + "`catls sh`" + ` runs either the text after ` + "`-c`" + ` or a script file.

## Things you can try:
- Check that the path exists and is readable
- Pass the script inline:
~~~
$ catls sh -c 'ls -l; cat -n notes.txt'
~~~`,
	}

	scriptParseFailedIssue = &Issue{
		id: ScriptParseFailedId,
		mdMsg: `
# The script is not valid shell syntax!

The virtual shell understands POSIX shell and bash syntax.

## Things you can try:
- Quote redirection tokens meant for cat so the shell leaves them alone:
~~~
$ catls sh -c "cat a.txt '>>' all.txt"
~~~
- Check for unbalanced quotes, parentheses or missing ` + "`fi`/`done`",
	}

	manualPageNotFoundIssue = &Issue{
		id: ManualPageNotFoundId,
		mdMsg: `
# No manual entry!

Manual pages exist for the built-in utilities only.

## Available pages:
- ` + "`catls man cat`" + `
- ` + "`catls man ls`",
	}

	unsupportedFormatIssue = &Issue{
		id: UnsupportedFormatId,
		mdMsg: `
# Unsupported output format!

## Valid formats for ` + "`catls config dump --format`" + `:
- **cue** (default)
- **toml**
- **yaml**`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		scriptReadFailedIssue.Id():   scriptReadFailedIssue,
		scriptParseFailedIssue.Id():  scriptParseFailedIssue,
		manualPageNotFoundIssue.Id(): manualPageNotFoundIssue,
		unsupportedFormatIssue.Id():  unsupportedFormatIssue,
	}
)

// Id returns the catalog id.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw Markdown guidance.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the guidance with the glamour style at stylePath
// ("dark", "light", "notty", or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	return glamour.Render(strings.TrimSpace(string(i.mdMsg)), stylePath)
}

// Values returns every catalog entry ordered by id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return int(a.id) - int(b.id)
	})
}

// Get returns the entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}

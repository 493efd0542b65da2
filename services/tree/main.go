package treeService

import (
	"fmdverse/api/models/failures"
	"os"
	"strings"

	"github.com/evolbioinfo/gotree/io/newick"
	"github.com/m-mizutani/goerr/v2"
)

type Artifact struct {
	Path   string `json:"path"`
	Newick string `json:"-"`
	Leaves int    `json:"leaves"`
	Bytes  int    `json:"bytes"`
}

// Load reads a Newick artifact and parses it to check it is a single
// well formed tree. Anything unusable is tagged RenderUnavailable.
func Load(path string) (*Artifact, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read tree artifact",
			goerr.V("path", path),
			goerr.T(failures.RenderUnavailable))
	}

	text := strings.TrimSpace(string(content))
	if err := checkShape(text); err != nil {
		return nil, goerr.Wrap(err, "malformed tree artifact",
			goerr.V("path", path),
			goerr.T(failures.RenderUnavailable))
	}

	tree, err := newick.NewParser(strings.NewReader(text)).Parse()
	if err != nil {
		return nil, goerr.Wrap(err, "malformed tree artifact",
			goerr.V("path", path),
			goerr.T(failures.RenderUnavailable))
	}

	leaves := len(tree.Tips())
	if leaves < 2 {
		return nil, goerr.New("tree artifact has fewer than two tips",
			goerr.V("path", path),
			goerr.V("leaves", leaves),
			goerr.T(failures.RenderUnavailable))
	}

	return &Artifact{
		Path:   path,
		Newick: text,
		Leaves: leaves,
		Bytes:  len(text),
	}, nil
}

// checkShape rejects what the parser would silently accept : text after the
// first ';', a missing root clade, and a clade opened right after a label.
// Quoted labels and [comments] are skipped.
func checkShape(text string) error {
	if !strings.HasPrefix(text, "(") {
		return goerr.New("tree does not start with a clade")
	}

	var (
		depth     int
		inQuote   bool
		inComment bool
		ended     bool
		prev      rune
	)
	for _, r := range text {
		switch {
		case inQuote:
			if r == '\'' {
				inQuote = false
			}
			prev = 'a'
			continue
		case inComment:
			if r == ']' {
				inComment = false
			}
			continue
		case ended:
			return goerr.New("text after the end of the tree")
		}

		switch r {
		case '\'':
			inQuote = true
		case '[':
			inComment = true
			continue
		case '(':
			if prev != 0 && prev != '(' && prev != ',' {
				return goerr.New("clade opened after a label")
			}
			depth++
		case ')':
			depth--
			if depth < 0 {
				return goerr.New("unbalanced parentheses")
			}
		case ';':
			ended = true
		}
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			prev = r
		}
	}

	switch {
	case inQuote || inComment:
		return goerr.New("unterminated label or comment")
	case depth != 0:
		return goerr.New("unbalanced parentheses")
	case !ended:
		return goerr.New("tree does not end with ';'")
	}
	return nil
}

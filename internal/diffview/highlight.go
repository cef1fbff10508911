package diffview

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/wilbur182/timecop/internal/styles"
)

// Highlighter tokenizes a single file's content into lipgloss-styled
// segments. It is pure and re-entrant: the same (path, line) always
// produces the same segments, so callers may cache by content hash if
// they choose to, but this type holds no cache itself.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// NewHighlighter returns a highlighter for path's extension, or nil if
// no lexer matches.
func NewHighlighter(path string) *Highlighter {
	lexer := lexers.Match(path)
	if lexer == nil {
		if ext := filepath.Ext(path); ext != "" {
			lexer = lexers.Get(ext)
		}
	}
	if lexer == nil {
		return nil
	}

	style := chromastyles.Get(styles.GetSyntaxTheme())
	if style == nil {
		style = chromastyles.Fallback
	}

	return &Highlighter{lexer: chroma.Coalesce(lexer), style: style}
}

// Segment is a run of text sharing one style.
type Segment struct {
	Text  string
	Style lipgloss.Style
}

// Highlight tokenizes one line of source content.
func (h *Highlighter) Highlight(line string) []Segment {
	if h == nil || h.lexer == nil {
		return []Segment{{Text: line}}
	}
	iter, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return []Segment{{Text: line}}
	}

	var segments []Segment
	for _, tok := range iter.Tokens() {
		text := strings.TrimSuffix(tok.Value, "\n")
		if text == "" {
			continue
		}
		segments = append(segments, Segment{Text: text, Style: h.tokenStyle(tok.Type)})
	}
	return segments
}

func (h *Highlighter) tokenStyle(tt chroma.TokenType) lipgloss.Style {
	entry := h.style.Get(tt)
	st := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		st = st.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

// renderContent renders one diff line's content, syntax-highlighted
// when h is non-nil, with the diff-type background blended in for
// Add/Del rows. Diff chrome (prefixes, numbers) is never passed
// through this function.
func renderContent(content string, lt LineType, h *Highlighter) string {
	base := baseStyle(lt)
	if h == nil {
		return base.Render(content)
	}
	segments := h.Highlight(content)
	if len(segments) == 0 {
		return base.Render(content)
	}
	var sb strings.Builder
	for _, seg := range segments {
		sb.WriteString(blend(seg.Style, lt).Render(seg.Text))
	}
	return sb.String()
}

func baseStyle(lt LineType) lipgloss.Style {
	switch lt {
	case Add:
		return styles.DiffAdd.Background(styles.DiffAddBg)
	case Del:
		return styles.DiffRemove.Background(styles.DiffRemoveBg)
	default:
		return styles.DiffContext
	}
}

func blend(syntax lipgloss.Style, lt LineType) lipgloss.Style {
	switch lt {
	case Add:
		return syntax.Background(styles.DiffAddBg)
	case Del:
		return syntax.Background(styles.DiffRemoveBg)
	default:
		if _, isNoColor := syntax.GetForeground().(lipgloss.NoColor); isNoColor {
			return styles.DiffContext
		}
		return syntax
	}
}

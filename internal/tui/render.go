package tui

import (
	"strings"

	"github.com/studiowebux/bullet/internal/types"
)

// kindOrder fixes the display grouping: apps, then dirs, files, urls.
// Corpus order is preserved within each group.
var kindOrder = []types.Kind{types.KindApp, types.KindDir, types.KindFile, types.KindUrl}

func (m Model) View() string {
	if !m.sess.Running() {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleInputBox.Width(m.width - 2).Render(m.input.View()))
	b.WriteString("\n")

	if loadErr := m.sess.LoadErr(); loadErr != nil {
		b.WriteString(styleError.Render(loadErr.Error()))
		b.WriteString("\n\n")
		b.WriteString(styleHelp.Render("esc: quit"))
		return b.String()
	}

	for _, kind := range kindOrder {
		for _, s := range m.sess.Filtered() {
			if s.Kind != kind {
				continue
			}
			b.WriteString(renderRow(s))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderRow draws one shortcut as a glyph + canonical alias column and a
// detail column: description for apps and urls, (prefix/)path for dirs
// and files.
func renderRow(s types.Shortcut) string {
	var glyph, seq string
	switch s.Kind {
	case types.KindApp:
		glyph = styleAppGlyph.Render(">__ ")
		seq = styleAppSeq.Render(pad(s.DisplaySeq(), seqColumnWidth))
	case types.KindDir:
		glyph = styleDirGlyph.Render("[_] ")
		seq = styleDirSeq.Render(pad(s.DisplaySeq(), seqColumnWidth))
	case types.KindFile:
		glyph = styleFileGlyph.Render("[_] ")
		seq = styleFileSeq.Render(pad(s.DisplaySeq(), seqColumnWidth))
	case types.KindUrl:
		glyph = styleUrlGlyph.Render("(#) ")
		seq = styleUrlSeq.Render(pad(s.DisplaySeq(), seqColumnWidth))
	}

	var detail string
	switch s.Kind {
	case types.KindDir, types.KindFile:
		if s.PathPrefix != types.PrefixNone {
			detail = stylePrefix.Render(string(s.PathPrefix)+"/") + styleDetail.Render(s.Path)
		} else {
			detail = styleDetail.Render(s.Path)
		}
	default:
		detail = styleDetail.Render(s.Description)
	}

	return " " + glyph + seq + " " + detail
}

func (m Model) renderFooter() string {
	if err := m.sess.LaunchErr(); err != nil {
		return styleError.Render("launch failed: " + err.Error())
	}
	if m.status != "" {
		return styleStatus.Render(m.status)
	}
	return styleHelp.Render("type to filter • ctrl+y: copy target • esc: quit")
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

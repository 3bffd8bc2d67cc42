package app

import "github.com/iw2rmb/mono/export"

func (m Model) exportText() Model {
	text := m.editor.Value()
	if text == "" {
		return m
	}
	return m.writeExport(export.Text(text))
}

func (m Model) exportHTML() Model {
	text := m.editor.Value()
	if text == "" {
		return m
	}
	b, err := export.HTML(text, m.prefs)
	if err != nil {
		m.log.Warn("export html", "err", err)
		m.notice = "Export failed"
		return m
	}
	return m.writeExport(b)
}

func (m Model) writeExport(b export.Blob) Model {
	path, err := export.Write(m.cfg.ExportDir, b)
	if err != nil {
		m.log.Warn("export", "file", b.Name, "err", err)
		m.notice = "Export failed"
		return m
	}
	m.log.Info("exported document", "path", path, "bytes", len(b.Data))
	m.notice = "Exported " + path
	return m
}

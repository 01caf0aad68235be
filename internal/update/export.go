package update

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandeepkv93/habitd/internal/storage"
)

// exportDocument writes a stamped snapshot next to the data file. The
// live data file is never touched.
func (m *Model) exportDocument() {
	pather, ok := m.store.(interface{ Path() string })
	if m.store == nil || !ok {
		m.Status = StatusBar{Text: "export needs a file-backed store", IsError: true}
		return
	}

	now := m.nowFn()
	out, err := storage.Export(m.Doc, now)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}

	dir := filepath.Dir(pather.Path())
	name := fmt.Sprintf("habitd-export-%s.json", now.Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("exported to %s", path), IsError: false}
}

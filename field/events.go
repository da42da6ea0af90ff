package field

import "github.com/iw2rmb/inputmask/mask"

type ChangeEvent struct {
	Version   uint64
	Value     string
	RawValue  string
	Selection mask.Selection
	Complete  bool
}

func buildChangeEvent(ed *mask.Editor) ChangeEvent {
	return ChangeEvent{
		Version:   ed.Version(),
		Value:     ed.Value(),
		RawValue:  ed.RawValue(),
		Selection: ed.Selection(),
		Complete:  ed.Complete(),
	}
}

func (m *Model) emitChange() {
	if m.ed == nil {
		return
	}
	ver := m.ed.Version()
	if ver == m.lastVersion {
		return
	}
	m.lastVersion = ver
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.ed))
	}
}

package insighting

// Selection é a seleção de campanhas (ou faixas) do filtro do dashboard.
// O tri-estado explícito substitui a sobrecarga do conjunto vazio que a
// interface antiga tinha: "vazio no primeiro load" significava todas e
// "vazio após limpar" significava nenhuma.
type Selection struct {
	mode selectionMode
	set  map[string]bool
}

type selectionMode int

const (
	selectAll selectionMode = iota
	selectNone
	selectSubset
)

func SelectAll() Selection {
	return Selection{mode: selectAll}
}

func SelectNone() Selection {
	return Selection{mode: selectNone}
}

func SelectSubset(names ...string) Selection {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	if len(set) == 0 {
		return Selection{mode: selectNone}
	}
	return Selection{mode: selectSubset, set: set}
}

func (s Selection) IsAll() bool {
	return s.mode == selectAll
}

func (s Selection) IsNone() bool {
	return s.mode == selectNone
}

func (s Selection) Contains(name string) bool {
	switch s.mode {
	case selectAll:
		return true
	case selectNone:
		return false
	default:
		return s.set[name]
	}
}

// Size devolve o tamanho do subconjunto (0 para All/None)
func (s Selection) Size() int {
	return len(s.set)
}

package util

// IDMap interns strings into dense uint32 ids. Ids are assigned in first-seen order.
// The zero value is not usable, construct with NewIdMap.
type IDMap struct {
	strToID map[string]uint32
	idToStr *[]string
}

func NewIdMap() IDMap {
	idToStr := make([]string, 0)
	return IDMap{
		strToID: make(map[string]uint32),
		idToStr: &idToStr,
	}
}

// Lookup reports the id of an already interned string without assigning one.
func (m IDMap) Lookup(str string) (uint32, bool) {
	id, ok := m.strToID[str]
	return id, ok
}

func (m IDMap) GetID(str string) uint32 {
	if id, ok := m.strToID[str]; ok {
		return id
	}
	id := uint32(len(*m.idToStr))
	m.strToID[str] = id
	*m.idToStr = append(*m.idToStr, str)
	return id
}

func (m IDMap) GetStr(id uint32) string {
	if int(id) >= len(*m.idToStr) {
		return ""
	}
	return (*m.idToStr)[id]
}

func (m IDMap) Size() int {
	return len(*m.idToStr)
}

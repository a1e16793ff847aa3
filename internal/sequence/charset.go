package sequence

// CharacterSet is an ordered set of unique runes.
type CharacterSet struct {
	runes []rune
}

// NewCharacterSet builds a set from s, keeping the first occurrence of each rune.
func NewCharacterSet(s string) CharacterSet {
	return newCharacterSet([]rune(s))
}

func newCharacterSet(in []rune) CharacterSet {
	seen := make(map[rune]struct{}, len(in))
	out := make([]rune, 0, len(in))
	for _, r := range in {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return CharacterSet{runes: out}
}

// Len returns the number of distinct characters.
func (s CharacterSet) Len() int {
	return len(s.runes)
}

// Contains reports whether r is in the set.
func (s CharacterSet) Contains(r rune) bool {
	for _, c := range s.runes {
		if c == r {
			return true
		}
	}
	return false
}

// Runes returns a copy of the characters in order.
func (s CharacterSet) Runes() []rune {
	out := make([]rune, len(s.runes))
	copy(out, s.runes)
	return out
}

func (s CharacterSet) String() string {
	return string(s.runes)
}

// Union returns s followed by the characters of other not already in s.
func (s CharacterSet) Union(other CharacterSet) CharacterSet {
	merged := make([]rune, 0, len(s.runes)+len(other.runes))
	merged = append(merged, s.runes...)
	merged = append(merged, other.runes...)
	return newCharacterSet(merged)
}

// CharacterList is an item's own characters plus the override flag. With
// Override set the item ignores the configuration's default characters;
// otherwise both are merged.
type CharacterList struct {
	Set      CharacterSet
	Override bool
}

// NewCharacterList builds a list from s.
func NewCharacterList(s string, override bool) CharacterList {
	return CharacterList{Set: NewCharacterSet(s), Override: override}
}

// Len returns the number of distinct characters in the list.
func (l CharacterList) Len() int {
	return l.Set.Len()
}

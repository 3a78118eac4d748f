package rules

import "errors"

// ErrMapFrozen is returned when a mutation is attempted on a RuleMapBuilder
// that has already been frozen.
var ErrMapFrozen = errors.New("rulemap is frozen and cannot be modified")

// RuleMapItem is one child reference in a rule's decomposition: the child
// rule plus the span of the parent's letters it accounts for.
type RuleMapItem struct {
	Rule   *StenoRule
	Start  int
	Length int
}

// IsSpecial reports whether the item is a zero-length marker rather than a
// rule that actually consumes letters.
func (item RuleMapItem) IsSpecial() bool {
	return item.Length == 0
}

// RuleMapBuilder accumulates RuleMapItems while a rule is being parsed or
// lexed. Once Freeze is called the builder itself refuses further mutation;
// the returned RuleMap is the only read path callers should hold onto.
type RuleMapBuilder struct {
	items  []RuleMapItem
	frozen bool
}

// NewRuleMapBuilder returns an empty, mutable RuleMapBuilder.
func NewRuleMapBuilder() *RuleMapBuilder {
	return &RuleMapBuilder{}
}

// Add appends a child reference at the given offset and length within the
// parent's (still being assembled) letters. Two children may share the same
// (start, length) coordinates only when at least one of them is a
// zero-length special marker; Add does not itself enforce the non-decreasing
// start-order invariant the caller is expected to maintain (both the
// rule-library parser and the lexer naturally build rulemaps in order).
func (b *RuleMapBuilder) Add(rule *StenoRule, start, length int) error {
	if b.frozen {
		return ErrMapFrozen
	}
	b.items = append(b.items, RuleMapItem{Rule: rule, Start: start, Length: length})
	return nil
}

// AddSpecial appends a zero-length marker rule at the given position.
func (b *RuleMapBuilder) AddSpecial(rule *StenoRule, start int) error {
	return b.Add(rule, start, 0)
}

// Freeze marks the builder frozen (rejecting further mutation) and returns
// an immutable RuleMap snapshot of its current contents. Freeze is
// idempotent: calling it again returns an equivalent snapshot.
func (b *RuleMapBuilder) Freeze() RuleMap {
	b.frozen = true
	items := make([]RuleMapItem, len(b.items))
	copy(items, b.items)
	return RuleMap{items: items}
}

// RuleMap is the immutable, read-only view of a rule's child decomposition.
// Its zero value is a valid empty rulemap.
type RuleMap struct {
	items []RuleMapItem
}

// Len returns the number of child entries, including zero-length specials.
func (m RuleMap) Len() int {
	return len(m.items)
}

// At returns the item at index i.
func (m RuleMap) At(i int) RuleMapItem {
	return m.items[i]
}

// Items returns a defensive copy of the rulemap's entries in order.
func (m RuleMap) Items() []RuleMapItem {
	out := make([]RuleMapItem, len(m.items))
	copy(out, m.items)
	return out
}

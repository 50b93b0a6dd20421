package domain

import "fmt"

// Stack is an item: a kind, an amount, a damage value and attached metadata.
// The kind is fixed at construction, and with it the Meta variant.
type Stack struct {
	Kind   Kind  `json:"kind"`
	Amount int   `json:"amount"`
	Damage int   `json:"damage,omitempty"`
	Meta   *Meta `json:"meta"`
}

// NewStack creates a stack with empty metadata of the kind's variant
func NewStack(kind Kind, amount int) *Stack {
	return &Stack{
		Kind:   kind,
		Amount: amount,
		Meta:   NewMeta(MetaKindFor(kind)),
	}
}

// Info returns the registry properties of the stack's kind
func (s *Stack) Info() KindInfo {
	return kindInfo(s.Kind)
}

// Clone returns a deep copy sharing no mutable state with s
func (s *Stack) Clone() *Stack {
	if s == nil {
		return nil
	}
	c := *s
	if s.Meta != nil {
		c.Meta = s.Meta.Clone()
	} else {
		c.Meta = NewMeta(MetaKindFor(s.Kind))
	}
	return &c
}

// SetAmount sets the stack size (1 to the kind's max stack)
func (s *Stack) SetAmount(amount int) error {
	maxStack := s.Info().MaxStack
	if amount < 1 || amount > maxStack {
		return fmt.Errorf("%w: %d (must be 1-%d for %s)", ErrInvalidAmount, amount, maxStack, s.Kind)
	}
	s.Amount = amount
	return nil
}

// SetDamage sets how worn the item is
func (s *Stack) SetDamage(damage int) error {
	maxDurability := s.Info().MaxDurability
	if maxDurability == 0 {
		if damage == 0 {
			s.Damage = 0
			return nil
		}
		return fmt.Errorf("%w: %s", ErrNotDamageable, s.Kind)
	}
	if damage < 0 || damage > maxDurability {
		return fmt.Errorf("%w: %d (must be 0-%d for %s)", ErrInvalidDamage, damage, maxDurability, s.Kind)
	}
	s.Damage = damage
	return nil
}

// SetRepairCost sets the anvil repair cost on repairable kinds
func (s *Stack) SetRepairCost(cost int) error {
	if !s.Info().Repairable {
		return fmt.Errorf("%w: %s", ErrNotRepairable, s.Kind)
	}
	if cost < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}
	s.Meta.RepairCost = cost
	return nil
}

// SetMeta attaches a copy of meta. The variant must match the kind.
func (s *Stack) SetMeta(meta *Meta) error {
	if meta == nil {
		s.Meta = NewMeta(MetaKindFor(s.Kind))
		return nil
	}
	if want := MetaKindFor(s.Kind); meta.Kind() != want {
		return fmt.Errorf("%w: %s needs %s metadata, got %s", ErrWrongMetaKind, s.Kind, want, meta.Kind())
	}
	s.Meta = meta.Clone()
	return nil
}

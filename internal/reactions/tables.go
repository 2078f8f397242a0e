package reactions

import (
	"fmt"
	"sort"
	"strings"
)

// keySep never appears in species names; particle validation rejects it.
const keySep = "\x1f"

// Outcome is an ordered product tuple.
type Outcome []string

func (o Outcome) String() string { return strings.Join(o, " + ") }

// Decay lists the equally likely outcomes of a single unstable parent.
type Decay struct {
	Parent   string
	Outcomes []Outcome
}

// Interaction lists the equally likely outcomes of a reactant set.
// Reactants are kept in canonical order and may repeat a species.
type Interaction struct {
	Reactants []string
	Outcomes  []Outcome
}

func (i Interaction) Key() string { return strings.Join(i.Reactants, keySep) }

func (i Interaction) String() string { return strings.Join(i.Reactants, " + ") }

// Distinct returns each reactant species once, in canonical order.
func (i Interaction) Distinct() []string {
	var out []string
	for _, r := range i.Reactants {
		if len(out) > 0 && out[len(out)-1] == r {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Canonical returns a sorted copy of the reactants.
func Canonical(reactants ...string) []string {
	out := make([]string, len(reactants))
	copy(out, reactants)
	sort.Strings(out)
	return out
}

// Key builds the lookup key for an unordered reactant set.
func Key(reactants ...string) string {
	return strings.Join(Canonical(reactants...), keySep)
}

// Tables is the pair of decay and interaction channel tables.
type Tables struct {
	decays       map[string]Decay
	decayOrder   []string
	interactions []Interaction
	index        map[string]int
}

func NewTables() *Tables {
	return &Tables{
		decays: make(map[string]Decay),
		index:  make(map[string]int),
	}
}

func checkOutcomes(label string, outcomes []Outcome) error {
	if len(outcomes) == 0 {
		return fmt.Errorf("%w: %s has no outcomes", ErrEmptyOutcome, label)
	}
	for i, o := range outcomes {
		if len(o) == 0 {
			return fmt.Errorf("%w: %s outcome %d is empty", ErrEmptyOutcome, label, i)
		}
	}
	return nil
}

func copyOutcomes(outcomes []Outcome) []Outcome {
	out := make([]Outcome, len(outcomes))
	for i, o := range outcomes {
		out[i] = append(Outcome(nil), o...)
	}
	return out
}

// AddDecay registers the decay outcomes of parent.
func (t *Tables) AddDecay(parent string, outcomes ...Outcome) error {
	if _, dup := t.decays[parent]; dup {
		return fmt.Errorf("%w: decay of %s", ErrDuplicateKey, parent)
	}
	if err := checkOutcomes("decay of "+parent, outcomes); err != nil {
		return err
	}
	t.decays[parent] = Decay{Parent: parent, Outcomes: copyOutcomes(outcomes)}
	t.decayOrder = append(t.decayOrder, parent)
	return nil
}

// AddInteraction registers a reactant set. Reactant order does not matter.
func (t *Tables) AddInteraction(reactants []string, outcomes ...Outcome) error {
	if len(reactants) == 0 {
		return fmt.Errorf("%w: interaction without reactants", ErrEmptyOutcome)
	}
	in := Interaction{Reactants: Canonical(reactants...)}
	key := in.Key()
	if _, dup := t.index[key]; dup {
		return fmt.Errorf("%w: interaction %s", ErrDuplicateKey, in)
	}
	if err := checkOutcomes("interaction "+in.String(), outcomes); err != nil {
		return err
	}
	in.Outcomes = copyOutcomes(outcomes)
	t.index[key] = len(t.interactions)
	t.interactions = append(t.interactions, in)
	return nil
}

// DecayOf returns the decay channel of a species, if any.
func (t *Tables) DecayOf(name string) (Decay, bool) {
	d, ok := t.decays[name]
	return d, ok
}

// Decays returns decay channels in insertion order.
func (t *Tables) Decays() []Decay {
	out := make([]Decay, 0, len(t.decayOrder))
	for _, p := range t.decayOrder {
		out = append(out, t.decays[p])
	}
	return out
}

// Interactions returns the interaction channels in iteration order. The
// slice is shared and must not be modified.
func (t *Tables) Interactions() []Interaction { return t.interactions }

func (t *Tables) InteractionFor(reactants ...string) (Interaction, bool) {
	i, ok := t.index[Key(reactants...)]
	if !ok {
		return Interaction{}, false
	}
	return t.interactions[i], true
}

// Len returns the number of decay and interaction channels.
func (t *Tables) Len() (decays, interactions int) {
	return len(t.decays), len(t.interactions)
}

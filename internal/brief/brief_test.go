package brief

import (
	"encoding/json"
	"reflect"
	"sort"
	"testing"
)

func TestToggleIsInvolution(t *testing.T) {
	m := NewMachine()
	m.Toggle(StepGoals, "Sell products")
	m.Toggle(StepGoals, "Get leads")
	original := append([]string(nil), m.Selections(StepGoals)...)

	m.Toggle(StepGoals, "Share information")
	m.Toggle(StepGoals, "Share information")

	if !reflect.DeepEqual(m.Selections(StepGoals), original) {
		t.Errorf("double toggle changed selections: %v != %v", m.Selections(StepGoals), original)
	}
}

func TestToggleRemovesExisting(t *testing.T) {
	m := NewMachine()
	m.Toggle(StepFeatures, "Payments")
	m.Toggle(StepFeatures, "Blog")
	m.Toggle(StepFeatures, "Payments")

	got := m.Selections(StepFeatures)
	if !reflect.DeepEqual(got, []string{"Blog"}) {
		t.Errorf("Selections = %v, want [Blog]", got)
	}
}

func TestToggleUnknownStepIsNoop(t *testing.T) {
	m := NewMachine()
	m.Toggle(StepIdea, "whatever")
	if len(m.Selections(StepIdea)) != 0 {
		t.Error("text steps must not accumulate selections")
	}
}

func TestMovePriorityIsPermutation(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		expected []string
	}{
		{"forward", 0, 2, []string{"Time", "Quality", "Budget", "Features"}},
		{"backward", 3, 0, []string{"Features", "Budget", "Time", "Quality"}},
		{"same index", 1, 1, []string{"Budget", "Time", "Quality", "Features"}},
		{"out of range from", 7, 0, []string{"Budget", "Time", "Quality", "Features"}},
		{"out of range to", 0, -1, []string{"Budget", "Time", "Quality", "Features"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			m.MovePriority(tt.from, tt.to)
			got := m.Brief().Priorities
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("MovePriority(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.expected)
			}

			sorted := append([]string(nil), got...)
			sort.Strings(sorted)
			base := append([]string(nil), DefaultPriorities...)
			sort.Strings(base)
			if !reflect.DeepEqual(sorted, base) {
				t.Errorf("priorities are not a permutation of the defaults: %v", got)
			}
		})
	}
}

func TestNextGatedByValidation(t *testing.T) {
	m := NewMachine()

	// Idea step with empty text must not advance.
	if m.Next() {
		t.Fatal("Next advanced past an empty idea step")
	}
	if m.Index() != 0 {
		t.Fatalf("index = %d, want 0", m.Index())
	}

	m.SetIdea("   ")
	if m.Next() {
		t.Fatal("whitespace-only idea should not validate")
	}

	m.SetIdea("A site to sell candles")
	if !m.Next() {
		t.Fatal("valid idea should advance")
	}
	if m.Current().Key != StepType {
		t.Fatalf("current step = %s, want %s", m.Current().Key, StepType)
	}

	// Goals step with zero selections must not advance.
	m.SetProjectType("Website")
	m.Next()
	if m.Current().Key != StepGoals {
		t.Fatalf("current step = %s, want %s", m.Current().Key, StepGoals)
	}
	if m.Next() {
		t.Fatal("Next advanced past goals with zero selections")
	}
}

func TestBackAlwaysAllowed(t *testing.T) {
	m := NewMachine()
	if m.Back() {
		t.Error("Back below step zero should be a no-op")
	}

	m.SetIdea("an idea")
	m.Next()
	// Clear nothing; going back never re-validates.
	if !m.Back() {
		t.Error("Back from step one should succeed")
	}
	if m.Index() != 0 {
		t.Errorf("index = %d, want 0", m.Index())
	}
}

func TestNextNoopAtLastStep(t *testing.T) {
	m := completeMachine(t)
	if !m.AtLast() {
		t.Fatal("machine should be at the last step")
	}
	if m.Next() {
		t.Error("Next past the last step should be a no-op")
	}
}

func TestFinishEmitsBrief(t *testing.T) {
	m := completeMachine(t)

	b, err := m.Finish()
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var round Brief
	if err := json.Unmarshal(data, &round); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if round.Idea != "A site to sell candles" {
		t.Errorf("idea = %q", round.Idea)
	}
	if round.ProjectType != "Website" {
		t.Errorf("project type = %q", round.ProjectType)
	}
	if !reflect.DeepEqual(round.Goals, []string{"Sell products"}) {
		t.Errorf("goals = %v", round.Goals)
	}
	if !reflect.DeepEqual(round.Features, []string{"Payments"}) {
		t.Errorf("features = %v", round.Features)
	}
	if !reflect.DeepEqual(round.Styles, []string{"Clean & Simple"}) {
		t.Errorf("styles = %v", round.Styles)
	}
	if !reflect.DeepEqual(round.Audiences, []string{"Customers"}) {
		t.Errorf("audiences = %v", round.Audiences)
	}
	if !reflect.DeepEqual(round.Priorities, DefaultPriorities) {
		t.Errorf("priorities = %v, want untouched default order", round.Priorities)
	}
	if round.Summary != "" {
		t.Errorf("summary = %q, want empty", round.Summary)
	}
	if round.Email != "a@b.com" {
		t.Errorf("email = %q", round.Email)
	}
}

func TestFinishRejectsIncompleteBrief(t *testing.T) {
	m := NewMachine()
	m.SetIdea("an idea")
	if _, err := m.Finish(); err == nil {
		t.Fatal("Finish should fail while gates are unsatisfied")
	}
}

func TestStepCatalogueShape(t *testing.T) {
	all := Steps()
	if len(all) != 9 {
		t.Fatalf("step count = %d, want 9", len(all))
	}

	eligible := 0
	for _, def := range all {
		if def.AIEligible {
			eligible++
			if def.Kind != StepMultiSelect {
				t.Errorf("AI-eligible step %s has kind %d", def.Key, def.Kind)
			}
		}
	}
	if eligible != 4 {
		t.Errorf("AI-eligible steps = %d, want 4", eligible)
	}

	if all[0].Key != StepIdea || all[len(all)-1].Key != StepContact {
		t.Error("catalogue order changed")
	}
}

// completeMachine walks the wizard with the minimal valid inputs of the
// candle-shop scenario and returns the machine at the last step.
func completeMachine(t *testing.T) *Machine {
	t.Helper()
	m := NewMachine()
	m.SetIdea("A site to sell candles")
	if !m.Next() {
		t.Fatal("idea step did not advance")
	}
	m.SetProjectType("Website")
	if !m.Next() {
		t.Fatal("type step did not advance")
	}
	m.Toggle(StepGoals, "Sell products")
	if !m.Next() {
		t.Fatal("goals step did not advance")
	}
	m.Toggle(StepFeatures, "Payments")
	if !m.Next() {
		t.Fatal("features step did not advance")
	}
	m.Toggle(StepStyle, "Clean & Simple")
	if !m.Next() {
		t.Fatal("style step did not advance")
	}
	m.Toggle(StepAudience, "Customers")
	if !m.Next() {
		t.Fatal("audience step did not advance")
	}
	// Priorities left at the default order.
	if !m.Next() {
		t.Fatal("priorities step did not advance")
	}
	// Summary has no gate.
	if !m.Next() {
		t.Fatal("summary step did not advance")
	}
	m.SetEmail("a@b.com")
	return m
}

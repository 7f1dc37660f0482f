package dispatch

import "testing"

func testCommand(label string, aliases ...string) *Command {
	return &Command{
		Label:   label,
		Aliases: aliases,
		Handler: HandlerFunc(func(Context, *ArgumentMap) (Reply, error) { return nil, nil }),
	}
}

func TestRegistryResolveCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	cmd := testCommand("help", "h")
	if err := r.Register(cmd); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"help", "HELP", "Help", "h", "H"} {
		if got := r.Resolve(name); got != cmd {
			t.Errorf("Resolve(%q) = %v, want the help command", name, got)
		}
	}
	if got := r.Resolve("helper"); got != nil {
		t.Errorf("Resolve(helper) = %v, want nil", got)
	}
}

func TestRegistryRejectsCollisions(t *testing.T) {
	tests := []struct {
		name  string
		first *Command
		dup   *Command
	}{
		{name: "label vs label", first: testCommand("ban"), dup: testCommand("ban")},
		{name: "label vs label different case", first: testCommand("ban"), dup: testCommand("BAN")},
		{name: "alias vs label", first: testCommand("ban", "b"), dup: testCommand("b")},
		{name: "alias vs alias", first: testCommand("ban", "b"), dup: testCommand("block", "B")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			if err := r.Register(tt.first); err != nil {
				t.Fatal(err)
			}
			if err := r.Register(tt.dup); err == nil {
				t.Error("expected collision error, got nil")
			}
		})
	}
}

func TestRegistryRejectsEmptyLabel(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(testCommand("")); err == nil {
		t.Error("expected error for empty label")
	}
}

func TestRegistryRejectsSubCommandSiblingCollision(t *testing.T) {
	r := NewRegistry()
	parent := testCommand("prefix")
	parent.SubCommands = []*Command{
		testCommand("set"),
		testCommand("SET"),
	}
	if err := r.Register(parent); err == nil {
		t.Error("expected sibling collision error, got nil")
	}
}

func TestRegistryAllKeepsRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	for _, label := range []string{"zeta", "alpha", "mid"} {
		if err := r.Register(testCommand(label)); err != nil {
			t.Fatal(err)
		}
	}
	all := r.All()
	want := []string{"zeta", "alpha", "mid"}
	if len(all) != len(want) {
		t.Fatalf("All() returned %d commands, want %d", len(all), len(want))
	}
	for i, label := range want {
		if all[i].Label != label {
			t.Errorf("All()[%d] = %s, want %s", i, all[i].Label, label)
		}
	}
}

func TestSubCommandMatchesLabelOnly(t *testing.T) {
	parent := testCommand("music")
	sub := testCommand("play", "p")
	parent.SubCommands = []*Command{sub}

	if got := parent.subCommand("play"); got != sub {
		t.Errorf("subCommand(play) = %v, want the sub", got)
	}
	if got := parent.subCommand("PLAY"); got != sub {
		t.Errorf("subCommand(PLAY) = %v, want the sub (case-insensitive)", got)
	}
	if got := parent.subCommand("p"); got != nil {
		t.Errorf("subCommand(p) = %v, want nil: aliases never match at sub-command depth", got)
	}
}

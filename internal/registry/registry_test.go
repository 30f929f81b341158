package registry

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/engine"
)

type stubBackend struct {
	id string
}

func (b *stubBackend) ID() string    { return b.id }
func (b *stubBackend) Title() string { return "Stub " + b.id }
func (b *stubBackend) Run(*engine.Engine, Options) error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Backend { return &stubBackend{id: "stub-b"} })
	Register("stub-a", func() Backend { return &stubBackend{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Error("Exists(stub-a) = false, expected true")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true, expected false")
	}

	b, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if b.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", b.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "stub-a":
			ia = i
		case "stub-b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() ids = %v, expected stub-a before stub-b", ids)
	}
	if list[ia].Title != "Stub stub-a" {
		t.Errorf("Title = %q", list[ia].Title)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Backend { return &stubBackend{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub-dup", func() Backend { return &stubBackend{id: "stub-dup"} })
}

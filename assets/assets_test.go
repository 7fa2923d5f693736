package assets

import (
	"testing"

	"github.com/automoto/hitgrid/shared/leveldata"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	names, err := LevelNames()
	if err != nil {
		t.Fatalf("LevelNames: %v", err)
	}
	if len(names) < 2 || names[0] != "01_sandbox" {
		t.Fatalf("names = %v", names)
	}

	levels, loaded, err := leveldata.LoadAllLevels(FS, LevelDir)
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(loaded) != len(names) {
		t.Errorf("loaded %v, listed %v", loaded, names)
	}

	sandbox := levels["01_sandbox"]
	if len(sandbox.Platforms) != 2 || len(sandbox.Crates) != 3 || len(sandbox.DeadZones) != 1 {
		t.Errorf("01_sandbox: %d platforms, %d crates, %d dead zones",
			len(sandbox.Platforms), len(sandbox.Crates), len(sandbox.DeadZones))
	}

	chain := levels["02_push_chain"]
	if len(chain.Crates) != 4 || len(chain.Platforms) != 1 {
		t.Errorf("02_push_chain: %d crates, %d platforms", len(chain.Crates), len(chain.Platforms))
	}
}

package sysinfo

import "testing"

func TestCapturePopulatesRequiredFields(t *testing.T) {
	t.Parallel()

	snap := Capture()
	if snap.Hostname == "" {
		t.Fatal("Hostname is empty")
	}
	if snap.CPUCount <= 0 {
		t.Fatalf("CPUCount = %d, want > 0", snap.CPUCount)
	}
	if snap.MemoryGB != snap.CPUCount*memoryPerCPUGB {
		t.Fatalf("MemoryGB = %d, want %d", snap.MemoryGB, snap.CPUCount*memoryPerCPUGB)
	}
	if snap.PID <= 0 {
		t.Fatalf("PID = %d, want > 0", snap.PID)
	}
	if snap.Kernel == "" {
		t.Fatal("Kernel is empty")
	}
	if snap.GoVersion == "" {
		t.Fatal("GoVersion is empty")
	}
}

func TestGroupIntInsertsSeparators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{28471, "28,471"},
		{2641847, "2,641,847"},
	}
	for _, tc := range tests {
		if got := GroupInt(tc.in); got != tc.want {
			t.Fatalf("GroupInt(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGridCensus(t *testing.T) {
	t.Parallel()

	nodes := Grid(GridTotal, GridRogue, GridProbing, 42)
	if len(nodes) != GridTotal {
		t.Fatalf("len(nodes) = %d, want %d", len(nodes), GridTotal)
	}

	counts := map[NodeState]int{}
	for _, node := range nodes {
		counts[node.State]++
	}
	if counts[NodeRogue] != GridRogue {
		t.Fatalf("rogue nodes = %d, want %d", counts[NodeRogue], GridRogue)
	}
	if counts[NodeProbing] != GridProbing {
		t.Fatalf("probing nodes = %d, want %d", counts[NodeProbing], GridProbing)
	}
	if counts[NodeActive] != GridTotal-GridRogue-GridProbing {
		t.Fatalf("active nodes = %d, want %d", counts[NodeActive], GridTotal-GridRogue-GridProbing)
	}
}

func TestGridShuffleIsSeedDeterministic(t *testing.T) {
	t.Parallel()

	a := Grid(GridTotal, GridRogue, GridProbing, 7)
	b := Grid(GridTotal, GridRogue, GridProbing, 7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("node %d differs across same-seed grids", i)
		}
	}
}

func TestGridRejectsImpossibleCensus(t *testing.T) {
	t.Parallel()

	nodes := Grid(4, 3, 3, 1)
	for _, node := range nodes {
		if node.State != NodeActive {
			t.Fatalf("node state = %q, want all active when census exceeds total", node.State)
		}
	}
	if nodes := Grid(0, 0, 0, 1); nodes != nil {
		t.Fatalf("Grid(0) = %v, want nil", nodes)
	}
}

package maze

import (
	"errors"
	"testing"

	"github.com/vovakirdan/gridkit/pkg/grid"
)

// snake builds a 3x2 maze with one winding corridor:
// (0,0) -> (0,1) -> (0,2) -> (1,2) -> (1,1) -> (1,0)
func snake(t *testing.T) *Maze {
	t.Helper()
	mz := New(grid.New(3, 2))
	carves := []struct {
		c grid.Coord
		d grid.Dir
	}{
		{grid.C(0, 0), grid.Right},
		{grid.C(0, 1), grid.Right},
		{grid.C(0, 2), grid.Bottom},
		{grid.C(1, 2), grid.Left},
		{grid.C(1, 1), grid.Left},
	}
	for _, cv := range carves {
		if !mz.Carve(cv.c, cv.d) {
			t.Fatalf("Carve(%v, %v) failed", cv.c, cv.d)
		}
	}
	return mz
}

const snakeLayout = "#######\n" +
	"#     #\n" +
	"##### #\n" +
	"#     #\n" +
	"#######"

func TestNewMazeClosed(t *testing.T) {
	mz := New(grid.New(4, 3))
	for _, b := range mz.Bytes() {
		if b != 0 {
			t.Fatalf("new maze should have no passages, got flags %08b", b)
		}
	}
	if mz.Matrix() != grid.New(4, 3) {
		t.Errorf("Matrix() = %+v", mz.Matrix())
	}
}

func TestCarveOpensBothSides(t *testing.T) {
	mz := New(grid.New(3, 3))
	c := grid.C(1, 1)

	for _, d := range grid.Dirs {
		if !mz.Carve(c, d) {
			t.Fatalf("Carve(%v) should succeed from the center", d)
		}
		if !mz.Open(c, d) {
			t.Errorf("Open(%v, %v) should be true", c, d)
		}
		if !mz.Open(c.Get(d), d.Inverse()) {
			t.Errorf("Open(%v, %v) should be true", c.Get(d), d.Inverse())
		}
	}
	if n := mz.Passages(c); n != 4 {
		t.Errorf("Passages() = %d, expected 4", n)
	}

	if !mz.Wall(c, grid.Top) {
		t.Fatal("Wall(Top) should succeed")
	}
	if mz.Open(c, grid.Top) || mz.Open(grid.C(0, 1), grid.Bottom) {
		t.Error("Wall should close both sides")
	}
	if n := mz.Passages(c); n != 3 {
		t.Errorf("Passages() after Wall = %d, expected 3", n)
	}
}

func TestCarveOutside(t *testing.T) {
	mz := New(grid.New(2, 2))

	if mz.Carve(grid.C(0, 0), grid.Top) {
		t.Error("carving through the border should fail")
	}
	if mz.Carve(grid.C(5, 5), grid.Left) {
		t.Error("carving from outside should fail")
	}
	if mz.Wall(grid.C(1, 1), grid.Right) {
		t.Error("walling through the border should fail")
	}
	if mz.Open(grid.C(-1, 0), grid.Bottom) {
		t.Error("Open outside the maze should be false")
	}
	for _, b := range mz.Bytes() {
		if b != 0 {
			t.Fatal("failed carve should not change flags")
		}
	}
}

func TestExitsAndDeadEnds(t *testing.T) {
	mz := snake(t)

	exits := mz.Exits(grid.C(0, 2))
	if len(exits) != 2 || exits[0] != grid.Bottom || exits[1] != grid.Left {
		t.Errorf("Exits((0,2)) = %v, expected [bottom left]", exits)
	}

	ends := mz.DeadEnds()
	if len(ends) != 2 || ends[0] != grid.C(0, 0) || ends[1] != grid.C(1, 0) {
		t.Errorf("DeadEnds() = %v, expected [(0,0) (1,0)]", ends)
	}
}

func TestSolve(t *testing.T) {
	mz := snake(t)

	path, ok := mz.Solve(grid.C(0, 0), grid.C(1, 0))
	if !ok {
		t.Fatal("Solve() should find a path")
	}
	expected := []grid.Coord{
		grid.C(0, 0), grid.C(0, 1), grid.C(0, 2),
		grid.C(1, 2), grid.C(1, 1), grid.C(1, 0),
	}
	if len(path) != len(expected) {
		t.Fatalf("path = %v, expected %v", path, expected)
	}
	for i := range expected {
		if path[i] != expected[i] {
			t.Errorf("path[%d] = %v, expected %v", i, path[i], expected[i])
		}
	}

	if p, ok := mz.Solve(grid.C(1, 1), grid.C(1, 1)); !ok || len(p) != 1 {
		t.Errorf("Solve to itself = %v, %v", p, ok)
	}
}

func TestSolveUnreachable(t *testing.T) {
	mz := New(grid.New(3, 3))
	mz.Carve(grid.C(0, 0), grid.Right)

	if _, ok := mz.Solve(grid.C(0, 0), grid.C(2, 2)); ok {
		t.Error("Solve() should fail when the goal is walled off")
	}
	if _, ok := mz.Solve(grid.C(0, 0), grid.C(9, 9)); ok {
		t.Error("Solve() should fail for a goal outside the maze")
	}
}

func TestDistances(t *testing.T) {
	mz := snake(t)
	dist := mz.Distances(mz.Start())

	// row-major: (0,0) (0,1) (0,2) (1,0) (1,1) (1,2)
	expected := []int{0, 1, 2, 5, 4, 3}
	for i := range expected {
		if dist[i] != expected[i] {
			t.Errorf("dist[%d] = %d, expected %d", i, dist[i], expected[i])
		}
	}
}

func TestStartGoal(t *testing.T) {
	mz := New(grid.New(5, 2))
	if mz.Start() != grid.C(0, 0) {
		t.Errorf("Start() = %v", mz.Start())
	}
	if mz.Goal() != grid.C(1, 4) {
		t.Errorf("Goal() = %v, expected (1,4)", mz.Goal())
	}
}

func TestBytesRoundTrip(t *testing.T) {
	mz := snake(t)

	restored, err := FromBytes(mz.Matrix(), mz.Bytes())
	if err != nil {
		t.Fatalf("FromBytes() failed: %v", err)
	}
	if restored.String() != mz.String() {
		t.Errorf("restored maze differs:\n%s\nvs\n%s", restored, mz)
	}

	if _, err := FromBytes(grid.New(2, 2), []byte{1, 2, 3}); !errors.Is(err, ErrSize) {
		t.Errorf("FromBytes() with short data error = %v, expected ErrSize", err)
	}
}

func TestFromBytesRejectsCorruptPassages(t *testing.T) {
	m := grid.New(2, 2)
	tests := []struct {
		name string
		data []byte
	}{
		{"off the top", []byte{1 << grid.Top, 0, 0, 0}},
		{"off the left", []byte{1 << grid.Left, 0, 0, 0}},
		{"off the bottom right", []byte{0, 0, 0, 1<<grid.Bottom | 1<<grid.Right}},
		{"one sided", []byte{1 << grid.Right, 0, 0, 0}},
		{"bit zero", []byte{1, 0, 0, 0}},
		{"high bit", []byte{1 << 7, 0, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mz, err := FromBytes(m, tc.data)
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("FromBytes(%v) error = %v, expected ErrCorrupt", tc.data, err)
			}
			if mz != nil {
				t.Error("FromBytes() should not return a maze for corrupt data")
			}
		})
	}

	valid := []byte{1 << grid.Right, 1 << grid.Left, 0, 0}
	mz, err := FromBytes(m, valid)
	if err != nil {
		t.Fatalf("FromBytes(%v) failed: %v", valid, err)
	}
	if _, ok := mz.Solve(mz.Start(), mz.Goal()); ok {
		t.Error("goal should be unreachable through a single top passage")
	}
}

func TestDirTo(t *testing.T) {
	if d, ok := DirTo(grid.C(2, 2), grid.C(2, 3)); !ok || d != grid.Right {
		t.Errorf("DirTo right = %v, %v", d, ok)
	}
	if d, ok := DirTo(grid.C(2, 2), grid.C(1, 2)); !ok || d != grid.Top {
		t.Errorf("DirTo top = %v, %v", d, ok)
	}
	if _, ok := DirTo(grid.C(2, 2), grid.C(3, 3)); ok {
		t.Error("diagonal rooms are not neighbors")
	}
}

func TestPerfect(t *testing.T) {
	if !snake(t).Perfect() {
		t.Error("a single corridor through every room is perfect")
	}

	loop := New(grid.New(2, 2))
	loop.Carve(grid.C(0, 0), grid.Right)
	loop.Carve(grid.C(0, 1), grid.Bottom)
	loop.Carve(grid.C(1, 1), grid.Left)
	if !loop.Perfect() {
		t.Error("three passages over four rooms should be perfect")
	}
	loop.Carve(grid.C(1, 0), grid.Top)
	if loop.Perfect() {
		t.Error("a loop is not perfect")
	}

	if New(grid.New(2, 1)).Perfect() {
		t.Error("disconnected rooms are not perfect")
	}
}

package grid

import "testing"

func TestDirCodes(t *testing.T) {
	expected := map[Dir]uint8{Top: 1, Right: 2, Bottom: 3, Left: 4}
	for d, code := range expected {
		if uint8(d) != code {
			t.Errorf("%v = %d, expected %d", d, uint8(d), code)
		}
	}
}

func TestDirAxis(t *testing.T) {
	tests := []struct {
		dir Dir
		isY bool
	}{
		{Top, true},
		{Right, false},
		{Bottom, true},
		{Left, false},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if tc.dir.IsY() != tc.isY {
				t.Errorf("IsY() = %v, expected %v", tc.dir.IsY(), tc.isY)
			}
			if tc.dir.IsX() == tc.dir.IsY() {
				t.Errorf("IsX() = %v should be the negation of IsY()", tc.dir.IsX())
			}
		})
	}
}

func TestDirInverse(t *testing.T) {
	tests := []struct {
		dir, inverse Dir
	}{
		{Top, Bottom},
		{Bottom, Top},
		{Right, Left},
		{Left, Right},
	}

	for _, tc := range tests {
		if got := tc.dir.Inverse(); got != tc.inverse {
			t.Errorf("%v.Inverse() = %v, expected %v", tc.dir, got, tc.inverse)
		}
		if got := tc.dir.Inverse().Inverse(); got != tc.dir {
			t.Errorf("%v.Inverse().Inverse() = %v", tc.dir, got)
		}
	}
}

func TestDirDelta(t *testing.T) {
	tests := []struct {
		dir        Dir
		drow, dcol int
	}{
		{Top, -1, 0},
		{Right, 0, 1},
		{Bottom, 1, 0},
		{Left, 0, -1},
	}

	for _, tc := range tests {
		drow, dcol := tc.dir.Delta()
		if drow != tc.drow || dcol != tc.dcol {
			t.Errorf("%v.Delta() = (%d, %d), expected (%d, %d)", tc.dir, drow, dcol, tc.drow, tc.dcol)
		}
	}
}

func TestParseDir(t *testing.T) {
	tests := []struct {
		in      string
		want    Dir
		wantErr bool
	}{
		{"top", Top, false},
		{"up", Top, false},
		{"r", Right, false},
		{"south", Bottom, false},
		{"left", Left, false},
		{"diagonal", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseDir(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDir(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDir(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestDirStringUnknown(t *testing.T) {
	if s := Dir(9).String(); s != "dir(9)" {
		t.Errorf("Dir(9).String() = %q", s)
	}
}
